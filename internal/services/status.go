package services

import "sync"

// Workflow names the user-facing activity an error came from.
type Workflow string

const (
	WorkflowSearch         Workflow = "search"
	WorkflowLocation       Workflow = "location"
	WorkflowTransportation Workflow = "transportation"
)

// Notice is the content of the error slot.
type Notice struct {
	Source Workflow
	Err    error
}

// Status holds the single error slot shared by search, location and
// transportation workflows. A later failure replaces an earlier one; each
// user action clears the slot before it starts.
type Status struct {
	mu     sync.RWMutex
	notice *Notice
}

func NewStatus() *Status { return &Status{} }

func (s *Status) Set(source Workflow, err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = &Notice{Source: source, Err: err}
}

func (s *Status) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

// Notice returns the current slot content, if any.
func (s *Status) Notice() (Notice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

// Error returns the display string of the slot, or "" when empty.
func (s *Status) Error() string {
	n, ok := s.Notice()
	if !ok {
		return ""
	}
	return n.Err.Error()
}

// ErrorFrom returns the slot's error only when it was raised by source.
func (s *Status) ErrorFrom(source Workflow) error {
	n, ok := s.Notice()
	if !ok || n.Source != source {
		return nil
	}
	return n.Err
}
