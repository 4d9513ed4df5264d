// Package host models the window the checklist panel lives in.
//
// Calls into a Controller are one-way messages: nothing is returned and
// callers must not assume the change has landed before the next event.
package host

import (
	"io"

	"github.com/charmbracelet/log"
)

// Controller is the window-manager side of the panel.
type Controller interface {
	SetWindowOpacity(value float64)
	MoveOffscreen()
	MoveOnscreen()
}

// Geometry is the window rectangle in screen cells.
type Geometry struct {
	X       int `toml:"x" yaml:"x"`
	HiddenX int `toml:"hidden_x" yaml:"hidden_x"`
	Y       int `toml:"y" yaml:"y"`
	Width   int `toml:"width" yaml:"width"`
	Height  int `toml:"height" yaml:"height"`
}

// DefaultGeometry docks the panel near the left edge; hiding it leaves a
// 50-wide sliver on screen.
func DefaultGeometry() Geometry {
	return Geometry{X: 50, HiddenX: -250, Y: 100, Width: 300, Height: 600}
}

// Window tracks the panel's position and opacity.
type Window struct {
	geom    Geometry
	x       int
	y       int
	width   int
	height  int
	opacity float64
	hidden  bool
	logger  *log.Logger
}

func NewWindow(g Geometry, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		geom:    g,
		x:       g.X,
		y:       g.Y,
		width:   g.Width,
		height:  g.Height,
		opacity: 1,
		logger:  logger,
	}
}

// SetWindowOpacity clamps value into [0,1].
func (w *Window) SetWindowOpacity(value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	w.opacity = value
	w.logger.Debug("window opacity", "value", value)
}

// MoveOffscreen slides the panel to the hidden offset. Y and size stay.
func (w *Window) MoveOffscreen() {
	w.x = w.geom.HiddenX
	w.hidden = true
	w.logger.Debug("window offscreen", "x", w.x, "y", w.y)
}

// MoveOnscreen restores the normal x position. Y and size stay.
func (w *Window) MoveOnscreen() {
	w.x = w.geom.X
	w.hidden = false
	w.logger.Debug("window onscreen", "x", w.x, "y", w.y)
}

// Toggle moves the panel to whichever side it is not on.
func (w *Window) Toggle() {
	if w.hidden {
		w.MoveOnscreen()
		return
	}
	w.MoveOffscreen()
}

func (w *Window) Hidden() bool     { return w.hidden }
func (w *Window) Opacity() float64 { return w.opacity }

// Bounds returns x, y, width and height.
func (w *Window) Bounds() (x, y, width, height int) {
	return w.x, w.y, w.width, w.height
}

// VisibleWidth is how much of the panel is left on screen.
func (w *Window) VisibleWidth() int {
	if w.x >= 0 {
		return w.width
	}
	v := w.width + w.x
	if v < 0 {
		return 0
	}
	return v
}

// Nop discards every call. Headless commands use it.
type Nop struct{}

func (Nop) SetWindowOpacity(float64) {}
func (Nop) MoveOffscreen()           {}
func (Nop) MoveOnscreen()            {}
