package host

import "testing"

func TestToggleTwiceRestoresPosition(t *testing.T) {
	w := NewWindow(DefaultGeometry(), nil)
	x0, y0, w0, h0 := w.Bounds()

	w.Toggle()
	x, y, width, height := w.Bounds()
	if !w.Hidden() || x != -250 {
		t.Fatalf("after first toggle hidden=%v x=%d", w.Hidden(), x)
	}
	if y != y0 || width != w0 || height != h0 {
		t.Errorf("toggle changed y/size: %d %d %d", y, width, height)
	}

	w.Toggle()
	x, y, width, height = w.Bounds()
	if w.Hidden() || x != x0 || y != y0 || width != w0 || height != h0 {
		t.Errorf("second toggle = (%d,%d,%d,%d) hidden=%v", x, y, width, height, w.Hidden())
	}
}

func TestMoveUsesConfiguredGeometry(t *testing.T) {
	w := NewWindow(Geometry{X: 10, HiddenX: -90, Y: 5, Width: 120, Height: 420}, nil)
	w.MoveOffscreen()
	if x, _, _, _ := w.Bounds(); x != -90 {
		t.Errorf("hidden x = %d, want -90", x)
	}
	w.MoveOnscreen()
	x, y, width, height := w.Bounds()
	if x != 10 || y != 5 || width != 120 || height != 420 {
		t.Errorf("bounds after round trip = (%d,%d) %dx%d", x, y, width, height)
	}
}

func TestVisibleWidth(t *testing.T) {
	w := NewWindow(DefaultGeometry(), nil)
	if got := w.VisibleWidth(); got != 300 {
		t.Errorf("onscreen visible width = %d", got)
	}
	w.MoveOffscreen()
	if got := w.VisibleWidth(); got != 50 {
		t.Errorf("offscreen visible width = %d, want 50", got)
	}
}

func TestSetWindowOpacityClamps(t *testing.T) {
	w := NewWindow(DefaultGeometry(), nil)
	w.SetWindowOpacity(0.35)
	if w.Opacity() != 0.35 {
		t.Errorf("opacity = %v", w.Opacity())
	}
	w.SetWindowOpacity(4)
	if w.Opacity() != 1 {
		t.Errorf("opacity = %v, want clamp to 1", w.Opacity())
	}
	w.SetWindowOpacity(-1)
	if w.Opacity() != 0 {
		t.Errorf("opacity = %v, want clamp to 0", w.Opacity())
	}
}

func TestNopSatisfiesController(t *testing.T) {
	var c Controller = Nop{}
	c.SetWindowOpacity(0.5)
	c.MoveOffscreen()
	c.MoveOnscreen()
}
