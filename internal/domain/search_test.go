package domain

import (
	"errors"
	"testing"
)

func TestSearchQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   SearchQuery
		wantErr string
	}{
		{"missing origin", SearchQuery{DestinationID: "X", Date: "2024-01-01"}, MsgOriginDestinationRequired},
		{"blank destination", SearchQuery{OriginID: "1", DestinationID: "  ", Date: "2024-01-01"}, MsgOriginDestinationRequired},
		{"bad date", SearchQuery{OriginID: "1", DestinationID: "2", Date: "01/02/2024"}, "date must be formatted as YYYY-MM-DD"},
		{"valid", SearchQuery{OriginID: "1", DestinationID: "2", Date: "2024-01-01"}, ""},
		{"date optional", SearchQuery{OriginID: "1", DestinationID: "2"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Message != tt.wantErr {
				t.Fatalf("message = %q, want %q", ve.Message, tt.wantErr)
			}
		})
	}
}

func TestSearchQueryNormalize(t *testing.T) {
	q := SearchQuery{OriginID: " 1 ", DestinationID: "2"}.Normalize()

	if q.OriginID != "1" {
		t.Fatalf("OriginID = %q, want trimmed", q.OriginID)
	}
	if q.Date != Today() {
		t.Fatalf("Date = %q, want today %q", q.Date, Today())
	}

	kept := SearchQuery{OriginID: "1", DestinationID: "2", Date: "2024-01-01"}.Normalize()
	if kept.Date != "2024-01-01" {
		t.Fatalf("Date = %q, want 2024-01-01", kept.Date)
	}
}
