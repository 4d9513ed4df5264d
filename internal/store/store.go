// Package store defines the key-value text storage both checklist stores
// write through to.
package store

// Keys of the two independent records.
const (
	TasksKey    = "checklist-tasks"
	SettingsKey = "checklist-settings"
)

// KV is synchronous string storage. Get reports ok=false for a key that
// was never set; that is not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
