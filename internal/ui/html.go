package ui

import (
	"html/template"
	"io"

	"github.com/idilsaglam/checklist/internal/model"
)

// Markup carries no inline handlers: each control names its action and
// task id in data attributes, and the host binds them per element.
var taskListTemplate = template.Must(template.New("tasks").Parse(
	`<div id="task-list">
{{- range .}}
  <div class="task-item{{if .Completed}} completed{{end}}" data-id="{{.ID}}">
    <input type="checkbox" class="task-checkbox" data-action="toggle" data-id="{{.ID}}"{{if .Completed}} checked{{end}}>
    <span class="task-text">{{.Text}}</span>
    <button class="task-delete" data-action="delete" data-id="{{.ID}}">✕</button>
  </div>
{{- end}}
</div>
`))

// RenderHTML writes the task list as markup. Task text is escaped.
func RenderHTML(w io.Writer, tasks []model.Task) error {
	return taskListTemplate.Execute(w, tasks)
}
