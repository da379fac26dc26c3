package dto

import (
	"aviation-route-planner/internal/domain"

	"github.com/rs/zerolog/log"
)

type RouteSearchRequest struct {
	OriginID      ID     `json:"originId"`
	DestinationID ID     `json:"destinationId"`
	Date          string `json:"date"`
}

func NewRouteSearchRequest(q domain.SearchQuery) RouteSearchRequest {
	return RouteSearchRequest{
		OriginID:      ID(q.OriginID),
		DestinationID: ID(q.DestinationID),
		Date:          q.Date,
	}
}

type RouteStepPayload struct {
	OriginCode         string `json:"originCode"`
	DestinationCode    string `json:"destinationCode"`
	TransportationType string `json:"transportationType"`
}

// RouteOptions converts the backend's list of step lists. Empty options are
// dropped, so later options are renumbered relative to the backend's index.
func RouteOptions(raw [][]RouteStepPayload) []domain.RouteOption {
	out := make([]domain.RouteOption, 0, len(raw))
	for i, steps := range raw {
		if len(steps) == 0 {
			log.Debug().Int("index", i).Msg("dropping empty route option")
			continue
		}
		opt := make(domain.RouteOption, 0, len(steps))
		for _, s := range steps {
			opt = append(opt, domain.RouteStep{
				OriginCode:         s.OriginCode,
				DestinationCode:    s.DestinationCode,
				TransportationType: domain.TransportationType(s.TransportationType),
			})
		}
		out = append(out, opt)
	}
	return out
}
