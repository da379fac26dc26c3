package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const MsgOriginDestinationRequired = "origin and destination must be selected"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Translate the first validator failure into a user-facing ValidationError.
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("validate: %w", err)
	}

	fe := ves[0]
	msg := fmt.Sprintf("%s is invalid", fe.Field())
	switch fe.Tag() {
	case "required":
		msg = MsgOriginDestinationRequired
	case "datetime":
		msg = "date must be formatted as YYYY-MM-DD"
	case "oneof":
		msg = "transportation type must be one of FLIGHT, BUS, UBER, SUBWAY"
	case "min", "max":
		msg = "operating days must be between 1 and 7"
	}

	return &ValidationError{Field: fe.Field(), Message: msg}
}
