package services

import "aviation-route-planner/internal/ports"

// Planner wires the controllers around one gateway and one shared error slot.
type Planner struct {
	Status          *Status
	Store           *Store
	Search          *RouteSearch
	Locations       *LocationSession
	Transportations *TransportationSession
}

func NewPlanner(gateway ports.Gateway) *Planner {
	status := NewStatus()
	store := NewStore(gateway, status)

	return &Planner{
		Status:          status,
		Store:           store,
		Search:          NewRouteSearch(gateway, store, status),
		Locations:       NewLocationSession(store),
		Transportations: NewTransportationSession(store),
	}
}
