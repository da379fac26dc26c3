package services

import (
	"aviation-route-planner/internal/api"
	"aviation-route-planner/internal/api/dto"
	"aviation-route-planner/internal/domain"
	"aviation-route-planner/internal/platform/obs"
	"aviation-route-planner/internal/ports"
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// ErrSuperseded is returned by a search whose response arrived after a newer
// search was issued. Its response is dropped and the state is left untouched.
var ErrSuperseded = errors.New("route search superseded by a newer search")

// RouteSearch owns the search parameters and the current result set.
//
// Results and the search error are mutually exclusive: a failed search empties
// the result set, a successful one leaves the error slot clear.
// Each search takes a generation number and only the latest one may change state.
type RouteSearch struct {
	gateway   ports.Gateway
	directory ports.LocationDirectory
	status    *Status

	mu         sync.RWMutex
	query      domain.SearchQuery
	results    []domain.RouteOption
	loading    bool
	generation uint64
}

func NewRouteSearch(gateway ports.Gateway, directory ports.LocationDirectory, status *Status) *RouteSearch {
	if status == nil {
		status = NewStatus()
	}
	return &RouteSearch{
		gateway:   gateway,
		directory: directory,
		status:    status,
		query:     domain.SearchQuery{Date: domain.Today()},
		results:   []domain.RouteOption{},
	}
}

func (s *RouteSearch) SetOrigin(id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.OriginID = id
}

func (s *RouteSearch) SetDestination(id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.DestinationID = id
}

func (s *RouteSearch) SetDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Date = date
}

func (s *RouteSearch) Query() domain.SearchQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Search runs a search with the current parameters.
func (s *RouteSearch) Search(ctx context.Context) ([]domain.RouteOption, error) {
	return s.SearchQuery(ctx, s.Query())
}

// SearchQuery validates q locally, then issues one POST to the route endpoint.
// Validation failures never reach the network.
func (s *RouteSearch) SearchQuery(ctx context.Context, q domain.SearchQuery) (_ []domain.RouteOption, err error) {
	defer obs.Time(ctx, "search.SearchQuery")(&err)

	q = q.Normalize()

	// A rejected search still supersedes any search in flight.
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if err := q.Validate(); err != nil {
		s.loading = false
		s.results = []domain.RouteOption{}
		s.mu.Unlock()
		s.status.Set(WorkflowSearch, err)
		return nil, err
	}
	s.loading = true
	s.mu.Unlock()

	s.status.Clear()

	var raw [][]dto.RouteStepPayload
	sendErr := s.gateway.Send(ctx, http.MethodPost, api.RoutesPath, dto.NewRouteSearchRequest(q), &raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		log.Debug().
			Uint64("generation", gen).
			Uint64("latest", s.generation).
			Msg("discarding superseded route search response")
		return nil, ErrSuperseded
	}

	s.loading = false

	if sendErr != nil {
		s.results = []domain.RouteOption{}
		s.status.Set(WorkflowSearch, sendErr)
		return nil, sendErr
	}

	s.results = dto.RouteOptions(raw)
	return cloneOptions(s.results), nil
}

func (s *RouteSearch) Results() []domain.RouteOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOptions(s.results)
}

func (s *RouteSearch) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the slot's error when it came from a search.
func (s *RouteSearch) Err() error {
	return s.status.ErrorFrom(WorkflowSearch)
}

// Composed resolves the current results against the location cache as it is
// now; it never re-issues the search.
func (s *RouteSearch) Composed() []ComposedRoute {
	return ComposeRoutes(s.Results(), s.directory)
}

func cloneOptions(in []domain.RouteOption) []domain.RouteOption {
	out := make([]domain.RouteOption, len(in))
	for i, opt := range in {
		out[i] = slices.Clone(opt)
	}
	return out
}
