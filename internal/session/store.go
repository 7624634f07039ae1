package session

import (
	"context"
	"sync"
	"time"

	"github.com/dgallion1/saesum/internal/sae"
	"github.com/oklog/ulid/v2"
)

// NewID returns a fresh session identifier.
func NewID() string {
	return ulid.Make().String()
}

// Valid reports whether id has the form NewID produces.
func Valid(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}

type entry struct {
	report    sae.Report
	updatedAt time.Time
}

// Store keeps the last successful report for each session, evicting
// sessions idle for longer than the TTL.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Put replaces the session's report.
func (s *Store) Put(id string, report sae.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{report: report, updatedAt: time.Now()}
}

// Get returns the session's report, or false if there is none or it expired.
func (s *Store) Get(id string) (sae.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || time.Since(e.updatedAt) > s.ttl {
		return sae.Report{}, false
	}
	return e.report, true
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes expired sessions.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, e := range s.entries {
		if now.Sub(e.updatedAt) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// Run calls Cleanup on every tick until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
