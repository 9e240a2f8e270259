package state

import (
	"fmt"
	"sync"
	"time"
)

// Status is the files channel connection state.
type Status int

const (
	StatusConnecting Status = iota
	StatusConnected
	StatusDisconnected
	StatusError
)

// String returns the indicator text.
func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "Connected"
	case StatusDisconnected:
		return "Disconnected"
	case StatusError:
		return "Error"
	default:
		return "Connecting"
	}
}

// Class returns the style class paired with the indicator text.
func (s Status) Class() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusError:
		return "error"
	default:
		return "disconnected"
	}
}

// Progress holds the latest scan counters.
type Progress struct {
	Counter int
	Pending int
	Graded  int
	Message string
}

// Snapshot represents the latest connection data available to the UI.
type Snapshot struct {
	Status       Status
	ConnectionID string
	LastError    error
	LastChange   time.Time
	Reloads      int
	// ConsecutiveFailures counts connection attempts that ended without a
	// successful handshake.
	ConsecutiveFailures int
	GaveUp              bool

	Progress         Progress
	HasProgress      bool
	ProgressUpdated  time.Time
	ProgressFailures int
}

// IsOffline returns true when the server has been unreachable for multiple
// attempts.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetStatus records a status transition. A non-nil err is kept as the last
// error; Connected clears it.
func (s *Store) SetStatus(status Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Status = status
	s.snapshot.LastChange = time.Now()
	switch {
	case err != nil:
		s.snapshot.LastError = err
	case status == StatusConnected:
		s.snapshot.LastError = nil
	}
}

// SetConnection marks a successful handshake with the given connection id.
func (s *Store) SetConnection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Status = StatusConnected
	s.snapshot.ConnectionID = id
	s.snapshot.LastChange = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.GaveUp = false
}

// SetFailures records the consecutive failed attempt count.
func (s *Store) SetFailures(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ConsecutiveFailures = n
}

// CountReload increments the reload counter.
func (s *Store) CountReload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Reloads++
}

// GiveUp marks the channel as permanently stopped.
func (s *Store) GiveUp(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Status = StatusDisconnected
	s.snapshot.GaveUp = true
	s.snapshot.LastError = err
	s.snapshot.LastChange = time.Now()
}

// SetProgress replaces the scan counters.
func (s *Store) SetProgress(p Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Progress = p
	s.snapshot.HasProgress = true
	s.snapshot.ProgressUpdated = time.Now()
	s.snapshot.ProgressFailures = 0
}

// ProgressFailed keeps the previous counters but counts the failure.
func (s *Store) ProgressFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ProgressFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
