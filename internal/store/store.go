package store

import (
	"fmt"

	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/model"
)

// Observer receives the render-agnostic description of the collection after
// every successful mutation
type Observer func([]model.NormalizedConfig)

// Option configures a Store
type Option func(*Store)

// WithObserver registers an observer before the initial load so it also sees
// the restored collection
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.subscribe(o)
	}
}

type subscription struct {
	id       int
	observer Observer
}

// Store handles the widget collection. It is driven from a single event loop
// and is not safe for concurrent use.
type Store struct {
	persist   Persistence
	widgets   []model.Widget
	nextID    int
	observers []subscription
	nextSub   int
}

// New creates a store and restores the collection from p, falling back to
// DefaultWidgets when nothing valid is stored
func New(p Persistence, opts ...Option) *Store {
	s := &Store{persist: p}
	for _, opt := range opts {
		opt(s)
	}

	s.widgets = s.restore()
	s.nextID = maxID(s.widgets) + 1
	s.notify()
	return s
}

func (s *Store) restore() []model.Widget {
	data, err := s.persist.Load()
	if err != nil {
		logging.Warnf("failed to load widget layout, using defaults: %v", err)
		return DefaultWidgets()
	}
	if data == nil {
		logging.Debugf("no stored widget layout, using defaults")
		return DefaultWidgets()
	}

	widgets, err := Decode(data)
	if err != nil {
		logging.Warnf("discarding stored widget layout: %v", err)
		return DefaultWidgets()
	}
	return widgets
}

// List returns the collection in render order
func (s *Store) List() []model.Widget {
	out := make([]model.Widget, len(s.widgets))
	copy(out, s.widgets)
	return out
}

// Get returns the widget with the given id
func (s *Store) Get(id int) (model.Widget, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.widgets[i], true
	}
	return model.Widget{}, false
}

// Len returns the number of widgets
func (s *Store) Len() int {
	return len(s.widgets)
}

// NextID returns the id the next added widget will get
func (s *Store) NextID() int {
	return s.nextID
}

// Add appends a widget built from cfg under a fresh id. cfg is stored as
// given; metric normalization is the caller's job. Widgets that would not
// survive a reload are refused with ErrInvalidWidget.
func (s *Store) Add(cfg model.WidgetConfig) (model.Widget, error) {
	w := model.Widget{
		ID:     s.nextID,
		Title:  cfg.Title,
		Metric: cfg.Metric,
		Type:   cfg.Type,
		Theme:  cfg.Theme,
	}
	if err := checkWidget(w); err != nil {
		return model.Widget{}, fmt.Errorf("add: %w", err)
	}

	next := make([]model.Widget, 0, len(s.widgets)+1)
	next = append(next, s.widgets...)
	next = append(next, w)

	if err := s.commit("add", next); err != nil {
		return model.Widget{}, err
	}
	s.nextID++
	return w, nil
}

// Update replaces the fields set in patch on the widget with the given id.
// Unknown ids leave the store untouched and return ErrWidgetNotFound.
func (s *Store) Update(id int, patch model.WidgetPatch) (model.Widget, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Widget{}, ErrWidgetNotFound
	}

	updated := patch.Apply(s.widgets[i])
	updated.ID = id
	if err := checkWidget(updated); err != nil {
		return model.Widget{}, fmt.Errorf("update widget %d: %w", id, err)
	}

	next := s.List()
	next[i] = updated

	if err := s.commit("update", next); err != nil {
		return model.Widget{}, err
	}
	return updated, nil
}

// Remove deletes the widget with the given id, keeping the order of the rest
func (s *Store) Remove(id int) error {
	if len(s.widgets) == 1 {
		return ErrLastWidget
	}
	i := s.indexOf(id)
	if i < 0 {
		return ErrWidgetNotFound
	}

	next := make([]model.Widget, 0, len(s.widgets)-1)
	next = append(next, s.widgets[:i]...)
	next = append(next, s.widgets[i+1:]...)

	return s.commit("remove", next)
}

// Reset replaces the collection with the built-in defaults. Ids handed out
// earlier are not reused for widgets added afterwards.
func (s *Store) Reset() error {
	defaults := DefaultWidgets()
	if err := s.commit("reset", defaults); err != nil {
		return err
	}
	if m := maxID(defaults) + 1; m > s.nextID {
		s.nextID = m
	}
	return nil
}

// Subscribe registers o for future mutations and returns a function that
// removes it again
func (s *Store) Subscribe(o Observer) func() {
	id := s.subscribe(o)
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) subscribe(o Observer) int {
	s.nextSub++
	s.observers = append(s.observers, subscription{id: s.nextSub, observer: o})
	return s.nextSub
}

// Normalized describes the collection for outside collaborators
func (s *Store) Normalized() []model.NormalizedConfig {
	out := make([]model.NormalizedConfig, len(s.widgets))
	for i, w := range s.widgets {
		out[i] = w.Normalize()
	}
	return out
}

// commit persists next and only then makes it the current collection
func (s *Store) commit(op string, next []model.Widget) error {
	data, err := Encode(next)
	if err != nil {
		return &PersistError{Op: op, Err: err}
	}
	if err := s.persist.Save(data); err != nil {
		logging.Errorf("%s: failed to save widget layout: %v", op, err)
		return &PersistError{Op: op, Err: err}
	}

	s.widgets = next
	s.notify()
	return nil
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	configs := s.Normalized()
	// Observers may unsubscribe while being notified
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	for _, sub := range subs {
		sub.observer(configs)
	}
}

func (s *Store) indexOf(id int) int {
	for i, w := range s.widgets {
		if w.ID == id {
			return i
		}
	}
	return -1
}
