package record

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idilsaglam/checklist/internal/model"
)

func TestTasksRoundTrip(t *testing.T) {
	original := []model.Task{
		{ID: 0, Text: "Buy milk", Completed: true, CreatedAt: "2026-10-19T08:00:00.000Z"},
		{ID: 3, Text: `<b>"quoted"</b> & more`, Completed: false, CreatedAt: "2026-10-19T08:01:00.000Z"},
		{ID: 7, Text: "Walk dog", Completed: false, CreatedAt: "2026-10-19T08:02:00.000Z"},
	}
	s, err := EncodeTasks(original)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	decoded, err := DecodeTasks(s)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", decoded, original)
	}
}

func TestEncodeNilTasks(t *testing.T) {
	s, err := EncodeTasks(nil)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	if s != "[]" {
		t.Errorf("EncodeTasks(nil) = %q, want []", s)
	}
}

func TestDecodeTasksBlank(t *testing.T) {
	for _, in := range []string{"", "   ", "[]"} {
		got, err := DecodeTasks(in)
		if err != nil {
			t.Fatalf("DecodeTasks(%q) failed: %v", in, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("DecodeTasks(%q) = %#v, want empty non-nil list", in, got)
		}
	}
}

func TestDecodeTasksCorrupt(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "{nope"},
		{"object instead of array", `{"id":1}`},
		{"negative id", `[{"id":-1,"text":"x","completed":false}]`},
		{"fractional id", `[{"id":1.5,"text":"x","completed":false}]`},
		{"missing text", `[{"id":1,"completed":false}]`},
		{"empty text", `[{"id":1,"text":"","completed":false}]`},
		{"completed as string", `[{"id":1,"text":"x","completed":"yes"}]`},
		{"duplicate ids", `[{"id":1,"text":"a","completed":false},{"id":1,"text":"b","completed":true}]`},
		{"whitespace text", `[{"id":0,"text":"   ","completed":false}]`},
		{"id at max int", `[{"id":9223372036854775807,"text":"x","completed":false}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTasks(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("error %v does not wrap ErrCorrupt", err)
			}
		})
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	p := model.Preferences{Opacity: 0.35, BackgroundColor: "#ff0000", TextColor: "#000000"}
	s, err := EncodePreferences(p)
	if err != nil {
		t.Fatalf("EncodePreferences failed: %v", err)
	}
	got, err := DecodePreferences(s)
	if err != nil {
		t.Fatalf("DecodePreferences failed: %v", err)
	}
	if got.Opacity == nil || *got.Opacity != 0.35 {
		t.Errorf("Opacity = %v", got.Opacity)
	}
	if got.BackgroundColor == nil || *got.BackgroundColor != "#ff0000" {
		t.Errorf("BackgroundColor = %v", got.BackgroundColor)
	}
	if got.TextColor == nil || *got.TextColor != "#000000" {
		t.Errorf("TextColor = %v", got.TextColor)
	}
}

func TestDecodePreferencesPartial(t *testing.T) {
	got, err := DecodePreferences(`{"textColor":"#123456"}`)
	if err != nil {
		t.Fatalf("DecodePreferences failed: %v", err)
	}
	if got.Opacity != nil || got.BackgroundColor != nil {
		t.Errorf("absent fields should stay nil: %+v", got)
	}
	if got.TextColor == nil || *got.TextColor != "#123456" {
		t.Errorf("TextColor = %v", got.TextColor)
	}
}

func TestDecodePreferencesCorrupt(t *testing.T) {
	for _, in := range []string{"not json", `[]`, `{"opacity":"0.8"}`, `{"textColor":12}`} {
		if _, err := DecodePreferences(in); !errors.Is(err, ErrCorrupt) {
			t.Errorf("DecodePreferences(%q) err = %v, want ErrCorrupt", in, err)
		}
	}
}
