package domain

// One directed leg of an itinerary as returned by the search backend.
type RouteStep struct {
	OriginCode         string
	DestinationCode    string
	TransportationType TransportationType
}

// Represents one complete itinerary: an ordered, non-empty chain of steps where
// each step departs from the previous step's destination. The backend is
// trusted to uphold the chain; Connected lets callers check it.
type RouteOption []RouteStep

// Connected reports whether every step starts where the previous one ended.
func (r RouteOption) Connected() bool {
	if len(r) == 0 {
		return false
	}
	for i := 1; i < len(r); i++ {
		if r[i-1].DestinationCode != r[i].OriginCode {
			return false
		}
	}
	return true
}

// Origin and Destination return the chain's endpoint codes, or "" when empty.
func (r RouteOption) Origin() string {
	if len(r) == 0 {
		return ""
	}
	return r[0].OriginCode
}

func (r RouteOption) Destination() string {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1].DestinationCode
}
