package ports

import "aviation-route-planner/internal/domain"

// Read-only view of the location cache used to resolve codes for display.
type LocationDirectory interface {
	LocationByCode(code string) (domain.Location, bool)
}
