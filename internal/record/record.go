// Package record serializes the task list and the settings to the JSON
// text stored under each persistence key, and validates what it reads back.
package record

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/checklist/internal/model"
)

// ErrCorrupt marks a stored record that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt record")

//go:embed schema/*.json
var schemaFS embed.FS

var (
	compileOnce    sync.Once
	tasksSchema    *jsonschema.Schema
	settingsSchema *jsonschema.Schema
	compileErr     error
)

func schemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		for _, name := range []string{"tasks.json", "settings.json"} {
			b, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				compileErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(schemaURL(name), bytes.NewReader(b)); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
		}
		if tasksSchema, compileErr = compiler.Compile(schemaURL("tasks.json")); compileErr != nil {
			return
		}
		settingsSchema, compileErr = compiler.Compile(schemaURL("settings.json"))
	})
	return tasksSchema, settingsSchema, compileErr
}

func schemaURL(name string) string {
	return "mem://checklist/" + name
}

// validate checks raw against schema and reports the deepest failing
// location, the same way summaries are checked elsewhere.
func validate(schema *jsonschema.Schema, raw []byte) error {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := ve
			for len(leaf.Causes) > 0 {
				leaf = leaf.Causes[0]
			}
			return fmt.Errorf("schema: %s: %s", leafLocation(leaf.InstanceLocation), leaf.Message)
		}
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func leafLocation(ptr string) string {
	if ptr == "" {
		return "/"
	}
	return ptr
}

// blank reports whether stored text should count as an absent record.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EncodeTasks renders the task list as stored text.
func EncodeTasks(tasks []model.Task) (string, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// DecodeTasks parses stored text. Blank text yields an empty list.
// Any parse, schema or duplicate-id failure wraps ErrCorrupt, as does a
// blank task text or an id that leaves no room for the next one.
func DecodeTasks(s string) ([]model.Task, error) {
	if blank(s) {
		return []model.Task{}, nil
	}
	ts, _, err := schemas()
	if err != nil {
		return nil, err
	}
	if err := validate(ts, []byte(s)); err != nil {
		return nil, fmt.Errorf("%w: tasks: %w", ErrCorrupt, err)
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(s), &tasks); err != nil {
		return nil, fmt.Errorf("%w: tasks: json unmarshal: %w", ErrCorrupt, err)
	}
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID == math.MaxInt {
			return nil, fmt.Errorf("%w: tasks: id %d exhausts the id space", ErrCorrupt, t.ID)
		}
		if blank(t.Text) {
			return nil, fmt.Errorf("%w: tasks: blank text for id %d", ErrCorrupt, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: tasks: duplicate id %d", ErrCorrupt, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Settings is the stored form of model.Preferences. A nil field was
// absent from the record.
type Settings struct {
	Opacity         *float64 `json:"opacity,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	TextColor       *string  `json:"textColor,omitempty"`
}

// EncodePreferences renders preferences as stored text.
func EncodePreferences(p model.Preferences) (string, error) {
	b, err := json.Marshal(Settings{
		Opacity:         &p.Opacity,
		BackgroundColor: &p.BackgroundColor,
		TextColor:       &p.TextColor,
	})
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// DecodePreferences parses stored text. Blank text yields an empty
// Settings so every field falls back to its default.
func DecodePreferences(s string) (Settings, error) {
	if blank(s) {
		return Settings{}, nil
	}
	_, ss, err := schemas()
	if err != nil {
		return Settings{}, err
	}
	if err := validate(ss, []byte(s)); err != nil {
		return Settings{}, fmt.Errorf("%w: settings: %w", ErrCorrupt, err)
	}
	var out Settings
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return Settings{}, fmt.Errorf("%w: settings: json unmarshal: %w", ErrCorrupt, err)
	}
	return out, nil
}
