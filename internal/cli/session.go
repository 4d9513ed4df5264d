package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/checklist/internal/config"
	"github.com/idilsaglam/checklist/internal/host"
	"github.com/idilsaglam/checklist/internal/prefs"
	"github.com/idilsaglam/checklist/internal/record"
	"github.com/idilsaglam/checklist/internal/store"
	"github.com/idilsaglam/checklist/internal/store/filekv"
	"github.com/idilsaglam/checklist/internal/store/memkv"
	"github.com/idilsaglam/checklist/internal/store/sqlitekv"
	"github.com/idilsaglam/checklist/internal/tasks"
	"github.com/idilsaglam/checklist/internal/ui"
)

// session is one application instance: storage plus both hydrated stores.
type session struct {
	kv      store.KV
	closer  io.Closer
	tasks   *tasks.Store
	prefs   *prefs.Store
	surface *ui.Surface
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openKV picks the storage backend named in the config.
func openKV(cfg *config.Config, ephemeral bool) (store.KV, io.Closer, error) {
	backend := cfg.Backend
	if ephemeral {
		backend = config.BackendMemory
	}
	switch backend {
	case config.BackendMemory:
		return memkv.New(), nopCloser{}, nil
	case config.BackendSQLite:
		s, err := sqlitekv.Open(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		s, err := filekv.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	}
}

// openSession opens storage and hydrates both stores before anything is
// rendered. A corrupt record only resets its own domain.
func openSession(opt Options, logger *log.Logger, hc host.Controller) (*session, error) {
	kv, closer, err := openKV(opt.Config, opt.Ephemeral)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	surface := ui.NewSurface()
	s := &session{
		kv:      kv,
		closer:  closer,
		tasks:   tasks.New(kv, tasks.WithLogger(logger)),
		prefs:   prefs.New(kv, surface, hc, prefs.WithLogger(logger)),
		surface: surface,
	}
	if err := hydrateDomain(logger, "tasks", s.tasks.Hydrate()); err != nil {
		closer.Close()
		return nil, err
	}
	if err := hydrateDomain(logger, "settings", s.prefs.Hydrate()); err != nil {
		closer.Close()
		return nil, err
	}
	return s, nil
}

// hydrateDomain downgrades corruption to a warning; the store has already
// fallen back to its empty or default state.
func hydrateDomain(logger *log.Logger, domain string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, record.ErrCorrupt) {
		logger.Warn("reset to defaults", "record", domain, "err", err)
		return nil
	}
	return fmt.Errorf("hydrate %s: %w", domain, err)
}

func (s *session) Close() error {
	return s.closer.Close()
}
