package domain

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Parameters of one route search. Origin and destination are location ids,
// not codes.
type SearchQuery struct {
	OriginID      ID     `validate:"required"`
	DestinationID ID     `validate:"required"`
	Date          string `validate:"omitempty,datetime=2006-01-02"`
}

// Today returns the current local date in DateLayout.
func Today() string { return time.Now().Format(DateLayout) }

// Normalize trims the ids and defaults an empty date to today.
func (q SearchQuery) Normalize() SearchQuery {
	q.OriginID = ID(strings.TrimSpace(string(q.OriginID)))
	q.DestinationID = ID(strings.TrimSpace(string(q.DestinationID)))
	q.Date = strings.TrimSpace(q.Date)
	if q.Date == "" {
		q.Date = Today()
	}
	return q
}

// Validate requires both ends to be selected and the date, when given, to be an ISO date.
func (q SearchQuery) Validate() error {
	if !q.OriginID.IsSet() || !q.DestinationID.IsSet() {
		return &ValidationError{Field: "OriginID", Message: MsgOriginDestinationRequired}
	}
	return validationError(validate.Struct(q))
}
