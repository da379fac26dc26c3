package domain

import "testing"

func TestRouteOptionConnected(t *testing.T) {
	chain := RouteOption{
		{OriginCode: "SAW", DestinationCode: "IST", TransportationType: Bus},
		{OriginCode: "IST", DestinationCode: "LHR", TransportationType: Flight},
		{OriginCode: "LHR", DestinationCode: "WEM", TransportationType: Subway},
	}
	if !chain.Connected() {
		t.Fatal("expected chain to be connected")
	}
	if chain.Origin() != "SAW" || chain.Destination() != "WEM" {
		t.Fatalf("endpoints = %q -> %q, want SAW -> WEM", chain.Origin(), chain.Destination())
	}

	broken := RouteOption{
		{OriginCode: "SAW", DestinationCode: "IST"},
		{OriginCode: "ESB", DestinationCode: "LHR"},
	}
	if broken.Connected() {
		t.Fatal("expected broken chain to be reported")
	}

	if (RouteOption{}).Connected() {
		t.Fatal("empty option must not count as connected")
	}
}
