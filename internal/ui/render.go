package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/checklist/internal/model"
)

// Sanitize makes free text safe to paint on a terminal: escape sequences
// are stripped and other control characters become spaces.
func Sanitize(text string) string {
	text = strings.Map(func(r rune) rune {
		if r != '\x1b' && unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(text))
}

// CountLabel is the header text, e.g. "1 remaining, 2 total".
func CountLabel(remaining, total int) string {
	return fmt.Sprintf("%d remaining, %d total", remaining, total)
}

// RenderTasks paints the whole list from scratch. cursor marks the
// selected row; pass -1 for none.
func RenderTasks(tasks []model.Task, th Theme, cursor int) string {
	if len(tasks) == 0 {
		return th.Muted.Render("No tasks yet. Press a to add one.")
	}
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		text := Sanitize(t.Text)
		box := th.Muted.Render(th.Symbols.BoxUnchecked)
		body := th.Text.Render(text)
		if t.Completed {
			box = th.Success.Render(th.Symbols.BoxChecked)
			body = th.Done.Render(text)
		}
		prefix := "  "
		if i == cursor {
			prefix = th.Selected.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s", prefix, box, body, th.Muted.Render(th.Symbols.Delete)))
	}
	return strings.Join(lines, "\n")
}
