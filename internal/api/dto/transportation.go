package dto

import "aviation-route-planner/internal/domain"

type TransportationPayload struct {
	ID                 ID     `json:"id,omitempty"`
	OriginCode         string `json:"originCode"`
	DestinationCode    string `json:"destinationCode"`
	TransportationType string `json:"transportationType"`
	OperatingDays      []int  `json:"operatingDays"`
}

func NewTransportationPayload(d domain.TransportationDraft) TransportationPayload {
	days := make([]int, 0, len(d.OperatingDays))
	days = append(days, d.OperatingDays...)

	return TransportationPayload{
		ID:                 ID(d.ID),
		OriginCode:         d.OriginCode,
		DestinationCode:    d.DestinationCode,
		TransportationType: string(d.TransportationType),
		OperatingDays:      days,
	}
}

func (p TransportationPayload) Domain() domain.Transportation {
	return domain.Transportation{
		ID:                 domain.ID(p.ID),
		OriginCode:         p.OriginCode,
		DestinationCode:    p.DestinationCode,
		TransportationType: domain.TransportationType(p.TransportationType),
		OperatingDays:      p.OperatingDays,
	}
}

func Transportations(ps []TransportationPayload) []domain.Transportation {
	out := make([]domain.Transportation, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Domain())
	}
	return out
}
