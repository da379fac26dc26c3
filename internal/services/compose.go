package services

import (
	"aviation-route-planner/internal/domain"
	"aviation-route-planner/internal/ports"
	"fmt"
	"strings"
)

// Place is one end of a leg as shown to the user. An unresolved code shows
// the raw code as its name with an empty city.
type Place struct {
	Code     string
	Name     string
	City     string
	Resolved bool
}

// String renders "Name (City)" for a known location and the bare code otherwise.
func (p Place) String() string {
	if !p.Resolved {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.City)
}

type Leg struct {
	From Place
	To   Place
	Type domain.TransportationType
}

// ComposedRoute is a RouteOption resolved against the location cache.
// Stops holds the chain A, B, C for legs A→B and B→C.
type ComposedRoute struct {
	Number int
	Stops  []Place
	Legs   []Leg
}

func (r ComposedRoute) Title() string {
	return fmt.Sprintf("Route Option %d", r.Number)
}

// String renders the chain with each leg tagged by its transportation type,
// e.g. "Istanbul Airport (Istanbul) → Heathrow (London) [FLIGHT]".
func (r ComposedRoute) String() string {
	var b strings.Builder
	for i, leg := range r.Legs {
		if i == 0 {
			b.WriteString(leg.From.String())
		}
		fmt.Fprintf(&b, " → %s [%s]", leg.To, leg.Type)
	}
	return b.String()
}

// Locations adapts a cache snapshot to ports.LocationDirectory.
type Locations []domain.Location

func (ls Locations) LocationByCode(code string) (domain.Location, bool) {
	for _, l := range ls {
		if l.LocationCode == code {
			return l, true
		}
	}
	return domain.Location{}, false
}

func ResolvePlace(dir ports.LocationDirectory, code string) Place {
	if dir != nil {
		if l, ok := dir.LocationByCode(code); ok {
			return Place{Code: code, Name: l.Name, City: l.City, Resolved: true}
		}
	}
	return Place{Code: code, Name: code}
}

// ComposeRoute resolves every step of opt. Consecutive steps are assumed to
// share their joining code; the chain is built from each step's own codes.
func ComposeRoute(number int, opt domain.RouteOption, dir ports.LocationDirectory) ComposedRoute {
	r := ComposedRoute{
		Number: number,
		Stops:  make([]Place, 0, len(opt)+1),
		Legs:   make([]Leg, 0, len(opt)),
	}
	for i, step := range opt {
		leg := Leg{
			From: ResolvePlace(dir, step.OriginCode),
			To:   ResolvePlace(dir, step.DestinationCode),
			Type: step.TransportationType,
		}
		if i == 0 {
			r.Stops = append(r.Stops, leg.From)
		}
		r.Stops = append(r.Stops, leg.To)
		r.Legs = append(r.Legs, leg)
	}
	return r
}

// ComposeRoutes numbers options from 1 in backend order.
func ComposeRoutes(opts []domain.RouteOption, dir ports.LocationDirectory) []ComposedRoute {
	out := make([]ComposedRoute, 0, len(opts))
	for i, opt := range opts {
		out = append(out, ComposeRoute(i+1, opt, dir))
	}
	return out
}

// DescribeTransportation renders "Origin (City) → Destination (City)" with
// raw codes for unknown locations.
func DescribeTransportation(t domain.Transportation, dir ports.LocationDirectory) string {
	from := ResolvePlace(dir, t.OriginCode)
	to := ResolvePlace(dir, t.DestinationCode)
	return fmt.Sprintf("%s → %s", from, to)
}

// LocationLabel is the "name (city)" label used when choosing a location.
func LocationLabel(l domain.Location) string {
	return fmt.Sprintf("%s (%s)", l.Name, l.City)
}
