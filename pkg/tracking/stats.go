package tracking

import (
	"maps"
	"sync"
	"time"

	"github.com/dmitrymomot/landing/pkg/broadcast"
)

// Snapshot is a copy of the counters.
type Snapshot struct {
	Total     uint64            `json:"total"`
	ByName    map[string]uint64 `json:"byName"`
	ByVariant map[string]uint64 `json:"byVariant"`
	Dropped   uint64            `json:"dropped"`
	LastEvent time.Time         `json:"lastEvent,omitzero"`
}

// Stats counts the events it receives.
type Stats struct {
	mu        sync.RWMutex
	total     uint64
	byName    map[string]uint64
	byVariant map[string]uint64
	last      time.Time
	sub       broadcast.Subscriber[Event]
}

func NewStats() *Stats {
	return &Stats{
		byName:    make(map[string]uint64),
		byVariant: make(map[string]uint64),
	}
}

// Run consumes sub until it is closed.
func (s *Stats) Run(sub broadcast.Subscriber[Event]) {
	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()

	for msg := range sub.Receive() {
		s.Add(msg.Data)
	}
}

// Add counts one event.
func (s *Stats) Add(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.byName[e.Name]++
	if e.Variant != "" {
		s.byVariant[e.Variant]++
	}
	if e.Timestamp.After(s.last) {
		s.last = e.Timestamp
	}
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Total:     s.total,
		ByName:    maps.Clone(s.byName),
		ByVariant: maps.Clone(s.byVariant),
		LastEvent: s.last,
	}
	if s.sub != nil {
		snap.Dropped = s.sub.Dropped()
	}
	return snap
}
