// Package effects abstracts the outward side effects of an invocation: sound
// playback, desktop notifications, tab-title updates, and the focus/pause
// queries the router consults before emitting. Production bindings shell out
// to OS tooling; tests substitute in-memory recorders.
package effects

// Notification is the payload handed to the desktop notification delegate.
type Notification struct {
	Title    string
	Subtitle string
	Body     string
	Group    string
	IconPath string
}

// Sink is the capability set the router emits through. All emission methods
// are fire-and-forget: implementations must not block the invocation on
// delivery, and failures are swallowed.
type Sink interface {
	Play(filePath string, volume float64)
	Notify(n Notification)
	SetTitle(text string)
	TerminalFocused() bool
	Paused() bool
}
