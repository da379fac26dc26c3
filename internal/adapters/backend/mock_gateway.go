package backend

import (
	"aviation-route-planner/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Call is one request observed by MockGateway.
type Call struct {
	Method string
	Path   string
	Body   json.RawMessage
}

type MockResponse struct {
	Body any
	Err  error
}

// MockGateway is an in-memory ports.Gateway for tests. Responses are keyed by
// "METHOD path"; a key may hold a queue of responses consumed in order, the
// last one repeating.
type MockGateway struct {
	mu        sync.Mutex
	responses map[string][]MockResponse
	calls     []Call
}

func NewMockGateway() *MockGateway {
	return &MockGateway{responses: make(map[string][]MockResponse)}
}

func (m *MockGateway) On(method, path string, responses ...MockResponse) *MockGateway {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[method+" "+path] = append(m.responses[method+" "+path], responses...)
	return m
}

func (m *MockGateway) Send(ctx context.Context, method, path string, body, out any) error {
	call := Call{Method: method, Path: path}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("mock gateway: encode body: %w", err)
		}
		call.Body = b
	}

	m.mu.Lock()
	m.calls = append(m.calls, call)
	key := method + " " + path
	queue := m.responses[key]
	var resp MockResponse
	found := len(queue) > 0
	if found {
		resp = queue[0]
		if len(queue) > 1 {
			m.responses[key] = queue[1:]
		}
	}
	m.mu.Unlock()

	op, resource := describe(method, path)
	if !found {
		return domain.NewNetworkError(op, resource, &httpStatusError{Code: http.StatusNotFound, Body: "no mock for " + key})
	}
	if resp.Err != nil {
		return domain.NewNetworkError(op, resource, resp.Err)
	}
	if out == nil || resp.Body == nil {
		return nil
	}

	b, err := json.Marshal(resp.Body)
	if err != nil {
		return fmt.Errorf("mock gateway: encode response: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return domain.NewNetworkError(op, resource, errors.Join(errors.New("decode response"), err))
	}
	return nil
}

func (m *MockGateway) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded calls matching method and path.
func (m *MockGateway) CallsTo(method, path string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
