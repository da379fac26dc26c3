package backend

import (
	"aviation-route-planner/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

type location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestSendDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept application/json, got %q", r.Header.Get("Accept"))
		}
		if r.URL.Path != "/api/v1/location" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Istanbul Airport"}]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL+"/", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out []location
	if err := c.Send(context.Background(), http.MethodGet, "/api/v1/location", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Istanbul Airport" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestSendEncodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		var got location
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil || got.ID != 3 {
			t.Errorf("unexpected body %+v (%v)", got, err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.Send(context.Background(), http.MethodPut, "/api/v1/location/3", location{ID: 3, Name: "X"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSendNon2xxIsOpaqueAndNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "database is down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.Send(context.Background(), http.MethodGet, "/api/v1/transportation", nil, &[]location{})

	var ne *domain.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected *domain.NetworkError, got %v", err)
	}
	if got := err.Error(); got != "failed to fetch transportations" {
		t.Fatalf("expected opaque message, got %q", got)
	}

	var se *httpStatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError || se.Body != "database is down" {
		t.Fatalf("expected status cause through Unwrap, got %+v", se)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
}

func TestSendMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out [][]location
	err = c.Send(context.Background(), http.MethodPost, "/api/v1/route", map[string]string{"date": "2024-06-01"}, &out)
	if err == nil || err.Error() != "failed to fetch routes" {
		t.Fatalf("expected %q, got %v", "failed to fetch routes", err)
	}
}

func TestSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.Send(context.Background(), http.MethodDelete, "/api/v1/location/1", nil, nil)
	if err == nil || err.Error() != "failed to delete location" {
		t.Fatalf("expected %q, got %v", "failed to delete location", err)
	}
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(" http://localhost:8090/ ", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL() != "http://localhost:8090" {
		t.Fatalf("expected trimmed base url, got %q", c.BaseURL())
	}

	for _, bad := range []string{"", "localhost:8090/api", "/api"} {
		if _, err := NewClient(bad, 0); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		method, path string
		op, resource string
	}{
		{http.MethodGet, "/api/v1/location", "fetch", "locations"},
		{http.MethodGet, "/api/v1/transportation", "fetch", "transportations"},
		{http.MethodPost, "/api/v1/route", "fetch", "routes"},
		{http.MethodPost, "/api/v1/location", "create", "location"},
		{http.MethodPut, "/api/v1/transportation/4", "update", "transportation"},
		{http.MethodDelete, "/api/v1/location/4", "delete", "location"},
	}

	for _, tt := range tests {
		op, resource := describe(tt.method, tt.path)
		if op != tt.op || resource != tt.resource {
			t.Fatalf("describe(%s %s) = (%q, %q), want (%q, %q)", tt.method, tt.path, op, resource, tt.op, tt.resource)
		}
	}
}

func TestMockGatewayQueue(t *testing.T) {
	m := NewMockGateway().On(http.MethodGet, "/api/v1/location",
		MockResponse{Body: []location{{ID: 1}}},
		MockResponse{Err: errors.New("boom")},
	)
	ctx := context.Background()

	var out []location
	if err := m.Send(ctx, http.MethodGet, "/api/v1/location", nil, &out); err != nil || len(out) != 1 {
		t.Fatalf("first response: %v %+v", err, out)
	}
	for i := 0; i < 2; i++ {
		if err := m.Send(ctx, http.MethodGet, "/api/v1/location", nil, &out); err == nil {
			t.Fatalf("call %d: expected the last response to repeat", i+2)
		}
	}
	if err := m.Send(ctx, http.MethodGet, "/api/v1/unknown", nil, nil); err == nil {
		t.Fatal("expected error for unmatched call")
	}
	if n := len(m.CallsTo(http.MethodGet, "/api/v1/location")); n != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", n)
	}

	m.Reset()
	if len(m.Calls()) != 0 {
		t.Fatal("expected calls cleared")
	}
}
