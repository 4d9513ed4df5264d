package ui

import (
	"github.com/idilsaglam/checklist/internal/color"
	"github.com/idilsaglam/checklist/internal/model"
)

// Surface is the panel's paint state. It keeps the background the way a
// stylesheet would, as an rgba() string, and reads it back on demand.
type Surface struct {
	background   string
	textColor    string
	opacityLabel string
}

// NewSurface starts from the default palette at 80% background alpha.
func NewSurface() *Surface {
	bg, _ := color.ParseHex(model.DefaultBackgroundColor)
	return &Surface{
		background:   bg.WithAlpha(color.FallbackAlpha).String(),
		textColor:    model.DefaultTextColor,
		opacityLabel: "80%",
	}
}

// Background parses the painted value. An unreadable value reports the
// fallback alpha over black.
func (s *Surface) Background() color.RGBA {
	c, ok := color.ParseRGBA(s.background)
	if !ok {
		return color.RGBA{A: color.FallbackAlpha}
	}
	return c
}

func (s *Surface) SetBackground(c color.RGBA) {
	s.background = c.String()
}

func (s *Surface) SetTextColor(hex string) {
	s.textColor = hex
}

func (s *Surface) SetOpacityLabel(label string) {
	s.opacityLabel = label
}

// BackgroundCSS is the painted background in rgba() form.
func (s *Surface) BackgroundCSS() string { return s.background }

func (s *Surface) TextColor() string    { return s.textColor }
func (s *Surface) OpacityLabel() string { return s.opacityLabel }

// Fill is the opaque color a terminal paints for the background, the
// painted color flattened over a black desktop.
func (s *Surface) Fill() color.RGB {
	return s.Background().Composite(color.RGB{})
}
