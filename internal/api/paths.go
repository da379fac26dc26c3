package api

import (
	"aviation-route-planner/internal/domain"
	"net/url"
)

// Backend REST contract. All paths are relative to the configured base URL.
const (
	LocationsPath       = "/api/v1/location"
	TransportationsPath = "/api/v1/transportation"
	RoutesPath          = "/api/v1/route"
)

// ItemPath returns the singular-resource path for id under collection.
func ItemPath(collection string, id domain.ID) string {
	return collection + "/" + url.PathEscape(id.String())
}
