package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{`{"id": 42}`, "42"},
		{`{"id": "42"}`, "42"},
		{`{"id": "6f1c-aa"}`, "6f1c-aa"},
		{`{"id": null}`, ""},
	}

	for _, tt := range tests {
		var p LocationPayload
		if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if p.ID != tt.want {
			t.Fatalf("unmarshal %s: expected %q, got %q", tt.in, tt.want, p.ID)
		}
	}
}

func TestIDMarshal(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{"42", `42`},
		{"0", `0`},
		{"6f1c-aa", `"6f1c-aa"`},
		{"007", `"007"`},
		{"01", `"01"`},
		{"", `""`},
	}

	for _, tt := range tests {
		b, err := json.Marshal(tt.id)
		if err != nil {
			t.Fatalf("marshal %q: %v", tt.id, err)
		}
		if string(b) != tt.want {
			t.Fatalf("marshal %q: expected %s, got %s", tt.id, tt.want, b)
		}
	}
}

func TestLeadingZeroIDsSurviveRoundTrip(t *testing.T) {
	b, err := json.Marshal(RouteSearchRequest{OriginID: "01", DestinationID: "007", Date: "2024-06-01"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got RouteSearchRequest
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	if got.OriginID != "01" || got.DestinationID != "007" {
		t.Fatalf("expected ids 01 and 007, got %q and %q", got.OriginID, got.DestinationID)
	}
}

func TestRouteOptionsDropsEmptyOptions(t *testing.T) {
	raw := [][]RouteStepPayload{
		{},
		{{OriginCode: "IST", DestinationCode: "LHR", TransportationType: "FLIGHT"}},
	}

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = prev }()

	got := RouteOptions(raw)
	if len(got) != 1 || got[0][0].DestinationCode != "LHR" {
		t.Fatalf("unexpected options: %+v", got)
	}
	if out := buf.String(); !strings.Contains(out, "dropping empty route option") || !strings.Contains(out, `"index":0`) {
		t.Fatalf("expected the dropped option to be logged with its index, got %q", out)
	}
}
