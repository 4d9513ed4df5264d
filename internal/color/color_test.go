package color

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{"upper with hash", "#FF0000", RGB{255, 0, 0}, true},
		{"lower without hash", "ff0000", RGB{255, 0, 0}, true},
		{"mixed case", "#2C3e50", RGB{44, 62, 80}, true},
		{"four digits", "#ff00", RGB{}, false},
		{"three digits", "#f00", RGB{}, false},
		{"not a color", "notacolor", RGB{}, false},
		{"seven digits", "#ff00000", RGB{}, false},
		{"double hash", "##ff0000", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"non hex", "#gg0000", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseHex(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexIsLowercase(t *testing.T) {
	a, okA := ParseHex("#FF0000")
	b, okB := ParseHex("ff0000")
	if !okA || !okB {
		t.Fatalf("expected both to parse")
	}
	if a.Hex() != b.Hex() || a.Hex() != "#ff0000" {
		t.Errorf("got %q and %q, want #ff0000 for both", a.Hex(), b.Hex())
	}
}

func TestRGBAStringRoundTrip(t *testing.T) {
	in := RGBA{R: 44, G: 62, B: 80, A: 0.8}
	s := in.String()
	if s != "rgba(44, 62, 80, 0.8)" {
		t.Fatalf("String() = %q", s)
	}
	out, ok := ParseRGBA(s)
	if !ok {
		t.Fatalf("ParseRGBA(%q) failed", s)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestParseRGBAWithoutAlpha(t *testing.T) {
	got, ok := ParseRGBA("rgb(1, 2, 3)")
	if !ok {
		t.Fatal("expected rgb() to parse")
	}
	if got.A != FallbackAlpha {
		t.Errorf("alpha = %v, want fallback %v", got.A, FallbackAlpha)
	}
	if _, ok := ParseRGBA("rgba(300, 0, 0, 0.5)"); ok {
		t.Error("expected out-of-range channel to fail")
	}
}

func TestComposite(t *testing.T) {
	black := RGB{}
	if got := (RGBA{R: 255, G: 255, B: 255, A: 1}).Composite(black); got != (RGB{255, 255, 255}) {
		t.Errorf("opaque white over black = %+v", got)
	}
	if got := (RGBA{R: 255, G: 255, B: 255, A: 0}).Composite(black); got != black {
		t.Errorf("transparent white over black = %+v", got)
	}
	half := (RGBA{R: 200, G: 100, B: 0, A: 0.5}).Composite(black)
	if half.R < 99 || half.R > 101 || half.G < 49 || half.G > 51 || half.B != 0 {
		t.Errorf("half blend = %+v", half)
	}
}
