package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Symbols bundles glyphs and borders for one look.
type Symbols struct {
	BoxUnchecked, BoxChecked string
	Delete                   string
	Border                   lipgloss.Border
}

// SymbolsFor returns the named glyph set: classic (default), neon or mono.
func SymbolsFor(name string) Symbols {
	switch strings.ToLower(name) {
	case "neon":
		return Symbols{BoxUnchecked: "◻", BoxChecked: "◼", Delete: "✕", Border: lipgloss.RoundedBorder()}
	case "mono":
		return Symbols{BoxUnchecked: "[ ]", BoxChecked: "[x]", Delete: "x", Border: lipgloss.ASCIIBorder()}
	default:
		return Symbols{BoxUnchecked: "☐", BoxChecked: "☑", Delete: "✕", Border: lipgloss.NormalBorder()}
	}
}

// Theme is the set of styles renderers pull from. Colors come from the
// surface; glyphs come from Symbols. Every style that paints task text or
// a label carries the surface text color.
type Theme struct {
	Symbols Symbols

	App      lipgloss.Style
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Done     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
}

// Theme derives styles from what is currently painted.
func (s *Surface) Theme(sym Symbols) Theme {
	bg := lipgloss.Color(s.Fill().Hex())
	fg := lipgloss.Color(s.textColor)
	return Theme{
		Symbols: sym,
		App: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Border(sym.Border).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		Text:     lipgloss.NewStyle().Foreground(fg),
		Muted:    lipgloss.NewStyle().Foreground(fg).Faint(true),
		Done:     lipgloss.NewStyle().Foreground(fg).Faint(true).Strikethrough(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
	}
}
