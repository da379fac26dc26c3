package services

import (
	"aviation-route-planner/internal/domain"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
)

var ErrNoDraft = errors.New("edit session: no draft is open")

// Draft is implemented by domain.LocationDraft and domain.TransportationDraft.
type Draft interface {
	domain.LocationDraft | domain.TransportationDraft
}

// EditSession holds at most one draft of D, seeded empty or from an entity E.
// Drafts are values: every change replaces the draft, none mutates it.
// A failed submit keeps the session open with the draft intact.
type EditSession[E any, D Draft] struct {
	label  string
	save   func(context.Context, D) error
	idOf   func(D) domain.ID
	status *Status
	source Workflow

	mu    sync.Mutex
	open  bool
	draft D
	err   error
}

func (s *EditSession[E, D]) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var empty D
	s.open = true
	s.draft = empty
	s.err = nil
}

// OpenEdit seeds the draft with a copy of entity.
func (s *EditSession[E, D]) OpenEdit(entity E) error {
	var d D
	if err := copier.CopyWithOption(&d, &entity, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("open %s editor: copy entity: %w", s.label, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.draft = d
	s.err = nil
	return nil
}

// Update replaces the draft with fn's result.
func (s *EditSession[E, D]) Update(fn func(D) D) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoDraft
	}
	s.draft = fn(s.draft)
	return nil
}

func (s *EditSession[E, D]) Draft() (D, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.open
}

func (s *EditSession[E, D]) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Err is the error of the last failed submit while the session stays open.
func (s *EditSession[E, D]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Title is "Add <Label>" for a new draft and "Edit <Label>" otherwise.
func (s *EditSession[E, D]) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open && s.idOf(s.draft).IsSet() {
		return "Edit " + s.label
	}
	return "Add " + s.label
}

func (s *EditSession[E, D]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var empty D
	s.open = false
	s.draft = empty
	s.err = nil
}

// Submit hands the draft to the store, which creates or updates by id.
// On success the session closes; on failure the draft is kept for correction.
func (s *EditSession[E, D]) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		s.status.Set(s.source, ErrNoDraft)
		return ErrNoDraft
	}
	d := s.draft
	s.mu.Unlock()

	if err := s.save(ctx, d); err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return err
	}

	s.Cancel()
	return nil
}

type LocationSession struct {
	*EditSession[domain.Location, domain.LocationDraft]
}

func NewLocationSession(store *Store) *LocationSession {
	return &LocationSession{&EditSession[domain.Location, domain.LocationDraft]{
		label:  "Location",
		save:   store.SaveLocation,
		idOf:   func(d domain.LocationDraft) domain.ID { return d.ID },
		status: store.Status(),
		source: WorkflowLocation,
	}}
}

type TransportationSession struct {
	*EditSession[domain.Transportation, domain.TransportationDraft]
}

func NewTransportationSession(store *Store) *TransportationSession {
	return &TransportationSession{&EditSession[domain.Transportation, domain.TransportationDraft]{
		label:  "Transportation",
		save:   store.SaveTransportation,
		idOf:   func(d domain.TransportationDraft) domain.ID { return d.ID },
		status: store.Status(),
		source: WorkflowTransportation,
	}}
}

// ToggleDay adds day to the draft's operating days, or removes it when present.
func (s *TransportationSession) ToggleDay(day int) error {
	if day < domain.FirstOperatingDay || day > domain.LastOperatingDay {
		return &domain.ValidationError{
			Field:   "OperatingDays",
			Message: "operating days must be between 1 and 7",
		}
	}
	return s.Update(func(d domain.TransportationDraft) domain.TransportationDraft {
		return d.ToggleDay(day)
	})
}
