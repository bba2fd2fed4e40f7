// Package category defines the canonical reaction categories and the legacy
// alias table used to resolve names found in configs and pack manifests.
package category

// Category names a class of coding-event reaction, independent of which
// pack's sound files realize it.
type Category string

const (
	SessionStart  Category = "session.start"
	SessionReady  Category = "session.ready"
	SessionIdle   Category = "session.idle"
	SessionError  Category = "session.error"
	TaskComplete  Category = "task.complete"
	PermissionAsk Category = "permission.ask"
	UserAck       Category = "user.ack"
	UserSpam      Category = "user.spam"
	TrainerRemind Category = "trainer.remind"
)

var canonical = map[Category]struct{}{
	SessionStart:  {},
	SessionReady:  {},
	SessionIdle:   {},
	SessionError:  {},
	TaskComplete:  {},
	PermissionAsk: {},
	UserAck:       {},
	UserSpam:      {},
	TrainerRemind: {},
}

// aliases maps legacy category names kept for older packs and configs onto
// their canonical replacements.
var aliases = map[Category]Category{
	"start":        SessionStart,
	"ready":        SessionReady,
	"idle":         SessionIdle,
	"error":        SessionError,
	"stop":         TaskComplete,
	"complete":     TaskComplete,
	"done":         TaskComplete,
	"notification": PermissionAsk,
	"permission":   PermissionAsk,
	"ack":          UserAck,
	"spam":         UserSpam,
	"remind":       TrainerRemind,
}

// Resolve maps a raw category name through the alias table. The second return
// is false when the name resolves to nothing known.
func Resolve(name Category) (Category, bool) {
	if _, ok := canonical[name]; ok {
		return name, true
	}
	if target, ok := aliases[name]; ok {
		return target, true
	}
	return "", false
}
