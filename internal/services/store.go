package services

import (
	"aviation-route-planner/internal/api"
	"aviation-route-planner/internal/api/dto"
	"aviation-route-planner/internal/domain"
	"aviation-route-planner/internal/platform/obs"
	"aviation-route-planner/internal/ports"
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

// Store owns the local caches of locations and transportations and keeps them
// consistent with the remote store.
//
// Failed loads keep the previous cache and write the shared error slot.
// Every reload carries a per-collection generation: a response overtaken by a
// newer reload of the same collection is not cached.
//
// Write operations return only the write's own error. Reload failures after a
// successful write are surfaced through the error slot.
type Store struct {
	gateway ports.Gateway
	status  *Status
	deps    map[Kind][]Kind

	mu              sync.RWMutex
	locations       []domain.Location
	transportations []domain.Transportation
	loading         map[Kind]bool
	generation      map[Kind]uint64
}

func NewStore(gateway ports.Gateway, status *Status) *Store {
	if status == nil {
		status = NewStatus()
	}
	return &Store{
		gateway:         gateway,
		status:          status,
		deps:            Dependencies,
		locations:       []domain.Location{},
		transportations: []domain.Transportation{},
		loading:         make(map[Kind]bool),
		generation:      make(map[Kind]uint64),
	}
}

// Status returns the error slot this store writes to.
func (s *Store) Status() *Status { return s.status }

func (s *Store) Loading(kind Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[kind]
}

func (s *Store) beginLoad(kind Kind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation[kind]++
	s.loading[kind] = true
	return s.generation[kind]
}

// finishLoad applies the result when gen is still the latest load of kind.
func (s *Store) finishLoad(kind Kind, gen uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation[kind] != gen {
		return false
	}
	s.loading[kind] = false
	if apply != nil {
		apply()
	}
	return true
}

// Replace the location cache with the backend's current list.
func (s *Store) LoadLocations(ctx context.Context) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "store.LoadLocations")(&err)

	gen := s.beginLoad(KindLocation)

	var payload []dto.LocationPayload
	err = s.gateway.Send(ctx, http.MethodGet, api.LocationsPath, nil, &payload)
	if err != nil {
		if s.finishLoad(KindLocation, gen, nil) {
			s.status.Set(WorkflowLocation, err)
		}
		return nil, err
	}

	locations := dto.Locations(payload)
	if !s.finishLoad(KindLocation, gen, func() { s.locations = locations }) {
		log.Debug().Uint64("generation", gen).Msg("discarding superseded location load")
	}

	return slices.Clone(locations), nil
}

// Replace the transportation cache with the backend's current list.
func (s *Store) LoadTransportations(ctx context.Context) (_ []domain.Transportation, err error) {
	defer obs.Time(ctx, "store.LoadTransportations")(&err)

	gen := s.beginLoad(KindTransportation)

	var payload []dto.TransportationPayload
	err = s.gateway.Send(ctx, http.MethodGet, api.TransportationsPath, nil, &payload)
	if err != nil {
		if s.finishLoad(KindTransportation, gen, nil) {
			s.status.Set(WorkflowTransportation, err)
		}
		return nil, err
	}

	transportations := dto.Transportations(payload)
	if !s.finishLoad(KindTransportation, gen, func() { s.transportations = transportations }) {
		log.Debug().Uint64("generation", gen).Msg("discarding superseded transportation load")
	}

	return cloneTransportations(transportations), nil
}

// LoadAll fetches both collections concurrently. They share no cache, so
// neither load can observe the other.
func (s *Store) LoadAll(ctx context.Context) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := s.LoadLocations(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		_, err := s.LoadTransportations(ctx)
		return err
	})
	return p.Wait()
}

func (s *Store) reload(ctx context.Context, kind Kind) error {
	switch kind {
	case KindLocation:
		_, err := s.LoadLocations(ctx)
		return err
	case KindTransportation:
		_, err := s.LoadTransportations(ctx)
		return err
	}
	return fmt.Errorf("reload: unknown resource kind %q", kind)
}

// invalidate reloads kind and every kind depending on it, one after another.
// A failed reload does not stop the following ones.
func (s *Store) invalidate(ctx context.Context, kind Kind) error {
	var first error
	for _, k := range invalidationSet(s.deps, kind) {
		if err := s.reload(ctx, k); err != nil {
			log.Warn().Err(err).Str("kind", string(k)).Msg("reload after invalidation failed")
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// dispatch picks update for a draft with id and create otherwise.
func dispatch(collection string, id domain.ID) (string, string) {
	if id.IsSet() {
		return http.MethodPut, api.ItemPath(collection, id)
	}
	return http.MethodPost, collection
}

// SaveLocation creates the draft when it has no id and updates it otherwise,
// then reloads the location cache. Location fields are not checked locally;
// the backend is the only judge of their content.
func (s *Store) SaveLocation(ctx context.Context, d domain.LocationDraft) (err error) {
	defer obs.Time(ctx, "store.SaveLocation")(&err)

	s.status.Clear()

	method, path := dispatch(api.LocationsPath, d.ID)
	if err := s.gateway.Send(ctx, method, path, dto.NewLocationPayload(d), nil); err != nil {
		s.status.Set(WorkflowLocation, err)
		return err
	}

	_, _ = s.LoadLocations(ctx)
	return nil
}

func (s *Store) CreateLocation(ctx context.Context, d domain.LocationDraft) error {
	return s.SaveLocation(ctx, d.WithID(""))
}

func (s *Store) UpdateLocation(ctx context.Context, id domain.ID, d domain.LocationDraft) error {
	if !id.IsSet() {
		err := &domain.ValidationError{Field: "ID", Message: "location id is required for update"}
		s.status.Set(WorkflowLocation, err)
		return err
	}
	return s.SaveLocation(ctx, d.WithID(id))
}

// DeleteLocation removes the location, then reloads locations and every
// dependent collection regardless of the delete's outcome.
func (s *Store) DeleteLocation(ctx context.Context, id domain.ID) (err error) {
	defer obs.Time(ctx, "store.DeleteLocation")(&err)

	s.status.Clear()

	if !id.IsSet() {
		err := &domain.ValidationError{Field: "ID", Message: "location id is required"}
		s.status.Set(WorkflowLocation, err)
		return err
	}

	deleteErr := s.gateway.Send(ctx, http.MethodDelete, api.ItemPath(api.LocationsPath, id), nil, nil)
	if deleteErr != nil {
		s.status.Set(WorkflowLocation, deleteErr)
	}

	_ = s.invalidate(ctx, KindLocation)

	return deleteErr
}

// SaveTransportation validates the draft locally, then creates or updates it
// by id and reloads the transportation cache.
func (s *Store) SaveTransportation(ctx context.Context, d domain.TransportationDraft) (err error) {
	defer obs.Time(ctx, "store.SaveTransportation")(&err)

	s.status.Clear()

	if err := d.Validate(); err != nil {
		s.status.Set(WorkflowTransportation, err)
		return err
	}

	method, path := dispatch(api.TransportationsPath, d.ID)
	if err := s.gateway.Send(ctx, method, path, dto.NewTransportationPayload(d), nil); err != nil {
		s.status.Set(WorkflowTransportation, err)
		return err
	}

	_, _ = s.LoadTransportations(ctx)
	return nil
}

func (s *Store) CreateTransportation(ctx context.Context, d domain.TransportationDraft) error {
	return s.SaveTransportation(ctx, d.WithID(""))
}

func (s *Store) UpdateTransportation(ctx context.Context, id domain.ID, d domain.TransportationDraft) error {
	if !id.IsSet() {
		err := &domain.ValidationError{Field: "ID", Message: "transportation id is required for update"}
		s.status.Set(WorkflowTransportation, err)
		return err
	}
	return s.SaveTransportation(ctx, d.WithID(id))
}

func (s *Store) DeleteTransportation(ctx context.Context, id domain.ID) (err error) {
	defer obs.Time(ctx, "store.DeleteTransportation")(&err)

	s.status.Clear()

	if !id.IsSet() {
		err := &domain.ValidationError{Field: "ID", Message: "transportation id is required"}
		s.status.Set(WorkflowTransportation, err)
		return err
	}

	deleteErr := s.gateway.Send(ctx, http.MethodDelete, api.ItemPath(api.TransportationsPath, id), nil, nil)
	if deleteErr != nil {
		s.status.Set(WorkflowTransportation, deleteErr)
	}

	_ = s.invalidate(ctx, KindTransportation)

	return deleteErr
}

func (s *Store) Locations() []domain.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.locations)
}

func (s *Store) Transportations() []domain.Transportation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTransportations(s.transportations)
}

// LocationByCode returns the first cached location with the given code.
func (s *Store) LocationByCode(code string) (domain.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.locations {
		if l.LocationCode == code {
			return l, true
		}
	}
	return domain.Location{}, false
}

func (s *Store) LocationByID(id domain.ID) (domain.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.locations {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Location{}, false
}

func (s *Store) TransportationByID(id domain.ID) (domain.Transportation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transportations {
		if t.ID == id {
			t.OperatingDays = slices.Clone(t.OperatingDays)
			return t, true
		}
	}
	return domain.Transportation{}, false
}

func cloneTransportations(in []domain.Transportation) []domain.Transportation {
	out := make([]domain.Transportation, len(in))
	for i, t := range in {
		t.OperatingDays = slices.Clone(t.OperatingDays)
		out[i] = t
	}
	return out
}
