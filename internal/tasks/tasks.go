// Package tasks owns the ordered checklist and writes every change
// through to storage.
package tasks

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/record"
	"github.com/idilsaglam/checklist/internal/store"
)

// ErrEmptyText is returned by Add when the text is blank after trimming.
// The list is left untouched.
var ErrEmptyText = errors.New("empty task text")

// Renderer receives the full list after each mutation and replaces
// whatever it showed before.
type Renderer interface {
	RenderTasks(tasks []model.Task)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(tasks []model.Task)

func (f RendererFunc) RenderTasks(tasks []model.Task) { f(tasks) }

// Store holds the task list and the id counter. It is not safe for
// concurrent use; every call runs to completion on the event loop.
type Store struct {
	kv       store.KV
	tasks    []model.Task
	nextID   int
	now      func() time.Time
	renderer Renderer
	logger   *log.Logger
}

type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithRenderer(r Renderer) Option {
	return func(s *Store) { s.renderer = r }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		tasks:  []model.Task{},
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetRenderer swaps the renderer, for views built after the store.
func (s *Store) SetRenderer(r Renderer) {
	s.renderer = r
}

// Hydrate loads the stored list. A missing record leaves the list empty.
// A corrupt record also leaves it empty and returns an error wrapping
// record.ErrCorrupt.
func (s *Store) Hydrate() error {
	s.tasks = []model.Task{}
	s.nextID = 0

	raw, ok, err := s.kv.Get(store.TasksKey)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if !ok {
		s.logger.Debug("no stored tasks")
		s.render()
		return nil
	}
	tasks, err := record.DecodeTasks(raw)
	if err != nil {
		s.logger.Warn("stored tasks unreadable, starting empty", "err", err)
		s.render()
		return fmt.Errorf("load tasks: %w", err)
	}
	s.tasks = tasks
	s.nextID = nextID(tasks)
	s.logger.Debug("tasks loaded", "count", len(tasks), "next_id", s.nextID)
	s.render()
	return nil
}

func nextID(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	hi := tasks[0].ID
	for _, t := range tasks[1:] {
		if t.ID > hi {
			hi = t.ID
		}
	}
	return hi + 1
}

// Add appends a new open task.
func (s *Store) Add(text string) (model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, ErrEmptyText
	}
	t := model.Task{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: model.Stamp(s.now()),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, s.commit("add", "id", t.ID)
}

// Toggle flips the completed flag of task id. A missing id is a no-op
// and reports false.
func (s *Store) Toggle(id int) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true, s.commit("toggle", "id", id, "completed", s.tasks[i].Completed)
}

// Delete removes task id. The list is re-rendered and saved even when
// nothing matched; the bool reports whether a task was removed.
func (s *Store) Delete(id int) (bool, error) {
	removed := false
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed, s.commit("delete", "id", id, "removed", removed)
}

// ClearCompleted drops every completed task and returns how many went.
func (s *Store) ClearCompleted() (int, error) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	n := len(s.tasks) - len(kept)
	s.tasks = kept
	return n, s.commit("clear completed", "removed", n)
}

// Count derives the header numbers from the current list.
func (s *Store) Count() (remaining, total int) {
	total = len(s.tasks)
	remaining = total
	for _, t := range s.tasks {
		if t.Completed {
			remaining--
		}
	}
	return remaining, total
}

// Tasks returns a copy of the list in display order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get looks up a task by id.
func (s *Store) Get(id int) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) index(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) render() {
	if s.renderer != nil {
		s.renderer.RenderTasks(s.Tasks())
	}
}

// commit re-renders, then writes the list through.
func (s *Store) commit(op string, kv ...any) error {
	s.render()
	raw, err := record.EncodeTasks(s.tasks)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Set(store.TasksKey, raw); err != nil {
		s.logger.Error("save tasks failed", append([]any{"op", op, "err", err}, kv...)...)
		return fmt.Errorf("%s: save tasks: %w", op, err)
	}
	s.logger.Debug(op, kv...)
	return nil
}
