// Package hook parses the lifecycle event payload a coding assistant pipes to
// claxon on stdin, and models it as a closed union of event kinds.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Kind discriminates the known lifecycle event types.
type Kind string

const (
	KindSessionStart    Kind = "session.start"
	KindSessionIdle     Kind = "session.idle"
	KindSessionError    Kind = "session.error"
	KindSessionStatus   Kind = "session.status"
	KindPermissionAsked Kind = "permission.asked"
	KindMessageUpdated  Kind = "message.updated"
)

// Event is the closed set of lifecycle events. Each variant carries only the
// fields relevant to its kind.
type Event interface {
	Kind() Kind
}

// SessionStart fires when an assistant session begins.
type SessionStart struct{}

// SessionIdle fires when the assistant finishes responding and goes idle.
type SessionIdle struct{}

// SessionError fires when the assistant reports a failure.
type SessionError struct{}

// StatusChange fires on generic status transitions and carries the
// human-readable status label.
type StatusChange struct {
	Status string
}

// PermissionAsked fires when the assistant prompts for permission.
type PermissionAsked struct{}

// MessageUpdated fires when the user message stream changes.
type MessageUpdated struct {
	Role string
}

func (SessionStart) Kind() Kind    { return KindSessionStart }
func (SessionIdle) Kind() Kind     { return KindSessionIdle }
func (SessionError) Kind() Kind    { return KindSessionError }
func (StatusChange) Kind() Kind    { return KindSessionStatus }
func (PermissionAsked) Kind() Kind { return KindPermissionAsked }
func (MessageUpdated) Kind() Kind  { return KindMessageUpdated }

// maxPayloadBytes caps stdin reads. Hook payloads are small JSON objects;
// 1 MB is generous headroom that prevents unbounded allocation.
const maxPayloadBytes = 1 << 20

// payload is the wire shape of the hook stdin document.
type payload struct {
	Type       string `json:"type"`
	Properties struct {
		Status string `json:"status"`
		Role   string `json:"role"`
	} `json:"properties"`
}

// Parse decodes one event from r. Unknown event types return (nil, nil):
// the caller treats them as a no-op, not a failure.
func Parse(r io.Reader) (Event, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read hook payload: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode hook payload: %w", err)
	}

	switch Kind(strings.TrimSpace(p.Type)) {
	case KindSessionStart:
		return SessionStart{}, nil
	case KindSessionIdle:
		return SessionIdle{}, nil
	case KindSessionError:
		return SessionError{}, nil
	case KindSessionStatus:
		return StatusChange{Status: strings.TrimSpace(p.Properties.Status)}, nil
	case KindPermissionAsked:
		return PermissionAsked{}, nil
	case KindMessageUpdated:
		return MessageUpdated{Role: strings.TrimSpace(p.Properties.Role)}, nil
	default:
		return nil, nil
	}
}
