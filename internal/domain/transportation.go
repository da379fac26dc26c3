package domain

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type TransportationType string

const (
	Flight TransportationType = "FLIGHT"
	Bus    TransportationType = "BUS"
	Uber   TransportationType = "UBER"
	Subway TransportationType = "SUBWAY"
)

// TransportationTypes lists every mode in the order the editor offers them.
var TransportationTypes = []TransportationType{Uber, Bus, Flight, Subway}

func ParseTransportationType(s string) (TransportationType, error) {
	t := TransportationType(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(TransportationTypes, t) {
		return "", &ValidationError{
			Field:   "TransportationType",
			Message: fmt.Sprintf("unknown transportation type %q", s),
		}
	}
	return t, nil
}

// ISO weekdays, 1=Monday ... 7=Sunday.
const (
	FirstOperatingDay = 1
	LastOperatingDay  = 7
)

// A directed link between two location codes, typed by mode and active on a
// subset of weekdays. OperatingDays keeps insertion order.
type Transportation struct {
	ID                 ID
	OriginCode         string
	DestinationCode    string
	TransportationType TransportationType
	OperatingDays      []int
}

type TransportationDraft struct {
	ID                 ID
	OriginCode         string             `validate:"required"`
	DestinationCode    string             `validate:"required"`
	TransportationType TransportationType `validate:"omitempty,oneof=FLIGHT BUS UBER SUBWAY"`
	OperatingDays      []int              `validate:"dive,min=1,max=7"`
}

func (d TransportationDraft) WithOriginCode(v string) TransportationDraft {
	d.OriginCode = v
	return d
}

func (d TransportationDraft) WithDestinationCode(v string) TransportationDraft {
	d.DestinationCode = v
	return d
}

func (d TransportationDraft) WithTransportationType(v TransportationType) TransportationDraft {
	d.TransportationType = v
	return d
}

func (d TransportationDraft) WithID(id ID) TransportationDraft {
	d.ID = id
	return d
}

// ToggleDay removes day when present and appends it otherwise.
// The result always owns a fresh slice; the receiver's days are never touched.
func (d TransportationDraft) ToggleDay(day int) TransportationDraft {
	days := make([]int, 0, len(d.OperatingDays)+1)
	if i := slices.Index(d.OperatingDays, day); i >= 0 {
		days = append(days, d.OperatingDays[:i]...)
		days = append(days, d.OperatingDays[i+1:]...)
	} else {
		days = append(days, d.OperatingDays...)
		days = append(days, day)
	}
	d.OperatingDays = days
	return d
}

func (d TransportationDraft) HasDay(day int) bool {
	return slices.Contains(d.OperatingDays, day)
}

// Validate requires both endpoint codes before a transportation may be submitted.
func (d TransportationDraft) Validate() error {
	return validationError(validate.Struct(d))
}

func (d TransportationDraft) Transportation() Transportation {
	return Transportation{
		ID:                 d.ID,
		OriginCode:         d.OriginCode,
		DestinationCode:    d.DestinationCode,
		TransportationType: d.TransportationType,
		OperatingDays:      slices.Clone(d.OperatingDays),
	}
}

// FormatDays renders days in insertion order, e.g. "1, 3, 5".
func FormatDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, fmt.Sprint(d))
	}
	return strings.Join(parts, ", ")
}
