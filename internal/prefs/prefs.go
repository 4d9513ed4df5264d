// Package prefs holds the panel's visual settings and mirrors each change
// onto the rendering surface and the host window.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/checklist/internal/color"
	"github.com/idilsaglam/checklist/internal/host"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/record"
	"github.com/idilsaglam/checklist/internal/store"
)

var (
	ErrOpacityRange = errors.New("opacity out of range [0,1]")
	ErrInvalidColor = errors.New("invalid hex color")
)

// Surface is whatever paints the panel. Background reports what is
// currently painted, not what was last stored.
type Surface interface {
	Background() color.RGBA
	SetBackground(c color.RGBA)
	SetTextColor(hex string)
	SetOpacityLabel(label string)
}

// Store owns the preferences. Not safe for concurrent use.
type Store struct {
	kv      store.KV
	surface Surface
	host    host.Controller
	prefs   model.Preferences
	logger  *log.Logger
}

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func New(kv store.KV, surface Surface, hc host.Controller, opts ...Option) *Store {
	if hc == nil {
		hc = host.Nop{}
	}
	s := &Store{
		kv:      kv,
		surface: surface,
		host:    hc,
		prefs:   model.DefaultPreferences(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Preferences returns the current settings.
func (s *Store) Preferences() model.Preferences {
	return s.prefs
}

// OpacityLabel formats v the way the settings panel shows it.
func OpacityLabel(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// SetOpacity stores v, asks the host window to match it and persists.
// It does not touch the painted background alpha.
func (s *Store) SetOpacity(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrOpacityRange
	}
	s.prefs.Opacity = v
	s.host.SetWindowOpacity(v)
	s.surface.SetOpacityLabel(OpacityLabel(v))
	return s.save("opacity", v)
}

// SetBackgroundColor repaints the background with the new color and the
// alpha currently painted on the surface.
func (s *Store) SetBackgroundColor(hex string) error {
	rgb, ok := color.ParseHex(hex)
	if !ok {
		return ErrInvalidColor
	}
	alpha := s.surface.Background().A
	s.surface.SetBackground(rgb.WithAlpha(alpha))
	s.prefs.BackgroundColor = rgb.Hex()
	return s.save("background", rgb.Hex())
}

// SetTextColor applies hex to all text on the surface.
func (s *Store) SetTextColor(hex string) error {
	rgb, ok := color.ParseHex(hex)
	if !ok {
		return ErrInvalidColor
	}
	s.surface.SetTextColor(rgb.Hex())
	s.prefs.TextColor = rgb.Hex()
	return s.save("text", rgb.Hex())
}

// Hydrate reads the stored settings and applies opacity, background and
// text color in that order, each with its full side effects. Missing or
// invalid fields fall back to their defaults. A corrupt record applies
// all defaults, overwriting the bad record, and returns an error
// wrapping record.ErrCorrupt.
func (s *Store) Hydrate() error {
	p, loadErr := s.load()
	return errors.Join(
		loadErr,
		s.SetOpacity(p.Opacity),
		s.SetBackgroundColor(p.BackgroundColor),
		s.SetTextColor(p.TextColor),
	)
}

func (s *Store) load() (model.Preferences, error) {
	p := model.DefaultPreferences()
	raw, ok, err := s.kv.Get(store.SettingsKey)
	if err != nil {
		s.logger.Warn("settings unavailable, using defaults", "err", err)
		return p, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		s.logger.Debug("no stored settings")
		return p, nil
	}
	rec, err := record.DecodePreferences(raw)
	if err != nil {
		s.logger.Warn("stored settings unreadable, using defaults", "err", err)
		return p, fmt.Errorf("load settings: %w", err)
	}
	if v := rec.Opacity; v != nil {
		if math.IsNaN(*v) || *v < 0 || *v > 1 {
			s.logger.Warn("stored opacity out of range", "value", *v)
		} else {
			p.Opacity = *v
		}
	}
	if v := rec.BackgroundColor; v != nil {
		if _, ok := color.ParseHex(*v); ok {
			p.BackgroundColor = *v
		} else {
			s.logger.Warn("stored background color invalid", "value", *v)
		}
	}
	if v := rec.TextColor; v != nil {
		if _, ok := color.ParseHex(*v); ok {
			p.TextColor = *v
		} else {
			s.logger.Warn("stored text color invalid", "value", *v)
		}
	}
	return p, nil
}

func (s *Store) save(field string, value any) error {
	raw, err := record.EncodePreferences(s.prefs)
	if err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}
	if err := s.kv.Set(store.SettingsKey, raw); err != nil {
		s.logger.Error("save settings failed", "field", field, "err", err)
		return fmt.Errorf("set %s: save settings: %w", field, err)
	}
	s.logger.Debug("settings saved", "field", field, "value", value)
	return nil
}
