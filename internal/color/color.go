// Package color parses the hex colors chosen in settings and the RGBA
// values painted on the rendering surface.
package color

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexRegexp  = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
	rgbaRegexp = regexp.MustCompile(`^rgba?\((\d+),\s*(\d+),\s*(\d+)(?:,\s*([\d.]+))?\)$`)
)

// FallbackAlpha is the alpha assumed when a painted color carries none.
const FallbackAlpha = 0.8

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex accepts exactly six hex digits with an optional leading '#'.
// Case is ignored. Any other input reports ok=false.
func ParseHex(s string) (RGB, bool) {
	m := hexRegexp.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	var c [3]uint8
	for i := range c {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		c[i] = uint8(v)
	}
	return RGB{R: c[0], G: c[1], B: c[2]}, true
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha attaches an alpha channel.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RGBA is a painted color. A is in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// String renders the CSS form, e.g. "rgba(44, 62, 80, 0.8)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// ParseRGBA reads back a value produced by String. The rgb() form is
// accepted too and reports FallbackAlpha.
func ParseRGBA(s string) (RGBA, bool) {
	m := rgbaRegexp.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, false
	}
	var c [3]uint8
	for i := range c {
		v, err := strconv.ParseUint(m[i+1], 10, 8)
		if err != nil {
			return RGBA{}, false
		}
		c[i] = uint8(v)
	}
	a := FallbackAlpha
	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil || v > 1 {
			return RGBA{}, false
		}
		a = v
	}
	return RGBA{R: c[0], G: c[1], B: c[2], A: a}, true
}

// Composite flattens c over an opaque base. Terminals have no alpha, so
// the surface paints the blended color instead.
func (c RGBA) Composite(base RGB) RGB {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	out := base.colorful().BlendRgb(c.RGB().colorful(), a).Clamped()
	r, g, b := out.RGB255()
	return RGB{R: r, G: g, B: b}
}
