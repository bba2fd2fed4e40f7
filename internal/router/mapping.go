package router

import (
	"strings"

	"github.com/rbright/claxon/internal/category"
	"github.com/rbright/claxon/internal/effects"
	"github.com/rbright/claxon/internal/hook"
)

// statusCategories maps generic status labels onto reaction categories.
// Unlisted statuses update the title only.
var statusCategories = map[string]category.Category{
	"completed": category.TaskComplete,
	"done":      category.TaskComplete,
	"stopped":   category.TaskComplete,
	"error":     category.SessionError,
	"failed":    category.SessionError,
}

// mapEvent resolves an event to zero or one reaction category.
func mapEvent(ev hook.Event) (category.Category, bool) {
	switch e := ev.(type) {
	case hook.SessionStart:
		return category.SessionStart, true
	case hook.SessionIdle:
		return category.SessionIdle, true
	case hook.SessionError:
		return category.SessionError, true
	case hook.PermissionAsked:
		return category.PermissionAsk, true
	case hook.MessageUpdated:
		// Assistant-role updates are routine stream churn; only user
		// messages get acknowledged.
		if e.Role != "" && !strings.EqualFold(e.Role, "user") {
			return "", false
		}
		return category.UserAck, true
	case hook.StatusChange:
		cat, ok := statusCategories[strings.ToLower(e.Status)]
		return cat, ok
	default:
		return "", false
	}
}

// statusLabel extracts the human-readable label an event carries for the tab
// title, when it has one.
func statusLabel(ev hook.Event) (string, bool) {
	switch e := ev.(type) {
	case hook.StatusChange:
		if strings.TrimSpace(e.Status) == "" {
			return "", false
		}
		return e.Status, true
	case hook.SessionIdle:
		return "idle", true
	case hook.SessionError:
		return "error", true
	case hook.PermissionAsked:
		return "permission", true
	default:
		return "", false
	}
}

// notificationFor builds the desktop notification payload for a category.
func notificationFor(cat category.Category) effects.Notification {
	n := effects.Notification{Title: "Claude Code", Group: string(cat)}
	switch cat {
	case category.PermissionAsk:
		n.Subtitle = "Permission requested"
		n.Body = "The assistant is waiting for your approval."
	case category.SessionError:
		n.Subtitle = "Session error"
		n.Body = "The assistant reported a failure."
	case category.SessionIdle:
		n.Subtitle = "Idle"
		n.Body = "The assistant is waiting for input."
	case category.TaskComplete:
		n.Subtitle = "Task complete"
		n.Body = "The assistant finished its task."
	case category.TrainerRemind:
		n.Subtitle = "Exercise break"
		n.Body = "Daily goals are still open. A few reps now?"
	default:
		n.Body = string(cat)
	}
	return n
}
