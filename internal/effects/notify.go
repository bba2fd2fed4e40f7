package effects

import (
	"fmt"
	"os/exec"
	"strings"
)

// notifyTimeoutMS bounds how long a notification stays on screen.
const notifyTimeoutMS = 8000

// notifyCommand builds a freedesktop Notify call over DBus via busctl. The
// subtitle folds into the body; the group name rides along as the synchronous
// hint so repeated notifications in one group replace each other.
func notifyCommand(appName string, n Notification) *exec.Cmd {
	body := n.Body
	if strings.TrimSpace(n.Subtitle) != "" {
		body = n.Subtitle + "\n" + body
	}

	hintCount := "0"
	hintArgs := []string{}
	if strings.TrimSpace(n.Group) != "" {
		hintCount = "1"
		hintArgs = []string{"x-canonical-private-synchronous", "s", n.Group}
	}

	args := []string{
		"--user",
		"call",
		"org.freedesktop.Notifications",
		"/org/freedesktop/Notifications",
		"org.freedesktop.Notifications",
		"Notify",
		"susssasa{sv}i",
		appName,
		"0",
		n.IconPath,
		n.Title,
		body,
		"0", // actions array length
		hintCount,
	}
	args = append(args, hintArgs...)
	args = append(args, fmt.Sprintf("%d", notifyTimeoutMS))

	return exec.Command("busctl", args...)
}
