package model

import "time"

// CreatedAtLayout is the sortable UTC timestamp stored on each task.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Task is a single checklist entry.
// Text is stored trimmed and raw; renderers sanitize it.
type Task struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// Stamp formats t the way CreatedAt expects.
func Stamp(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}
