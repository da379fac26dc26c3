package dto

import "aviation-route-planner/internal/domain"

type LocationPayload struct {
	ID           ID     `json:"id,omitempty"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Country      string `json:"country"`
	LocationCode string `json:"locationCode"`
}

func NewLocationPayload(d domain.LocationDraft) LocationPayload {
	return LocationPayload{
		ID:           ID(d.ID),
		Name:         d.Name,
		City:         d.City,
		Country:      d.Country,
		LocationCode: d.LocationCode,
	}
}

func (p LocationPayload) Domain() domain.Location {
	return domain.Location{
		ID:           domain.ID(p.ID),
		Name:         p.Name,
		City:         p.City,
		Country:      p.Country,
		LocationCode: p.LocationCode,
	}
}

func Locations(ps []LocationPayload) []domain.Location {
	out := make([]domain.Location, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Domain())
	}
	return out
}
