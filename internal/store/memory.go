package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
)

// ErrNotFound is returned when no snapshot is available for a station.
var ErrNotFound = errors.New("no air quality data for station")

// MemoryStore keeps recent snapshots per station, oldest first. Nothing
// survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	stations map[string][]airquality.Snapshot

	maxHistory int           // per station, <= 0 means unlimited
	maxAge     time.Duration // <= 0 means unlimited

	now func() time.Time
}

// NewMemoryStore creates a store with the given retention limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		stations:   make(map[string][]airquality.Snapshot),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// SaveSnapshot records a snapshot for its station and prunes that
// station's history.
func (s *MemoryStore) SaveSnapshot(snapshot airquality.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.stations[snapshot.Station], snapshot)
	s.stations[snapshot.Station] = s.prune(history)
}

// prune drops snapshots beyond maxHistory or older than maxAge. The newest
// snapshot is always kept so a station never loses its current reading.
func (s *MemoryStore) prune(history []airquality.Snapshot) []airquality.Snapshot {
	if s.maxHistory > 0 && len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		keep := slices.IndexFunc(history, func(snap airquality.Snapshot) bool {
			return !snap.Timestamp.Before(cutoff)
		})
		if keep < 0 {
			keep = len(history) - 1
		}
		history = history[keep:]
	}
	return history
}

// GetLatest returns the most recent snapshot for a station.
func (s *MemoryStore) GetLatest(station string) (airquality.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.stations[station]
	if len(history) == 0 {
		return airquality.Snapshot{}, ErrNotFound
	}
	return history[len(history)-1], nil
}

// GetRange returns a copy of the station's snapshots taken between from and
// to, inclusive.
func (s *MemoryStore) GetRange(station string, from, to time.Time) ([]airquality.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []airquality.Snapshot
	for _, snap := range s.stations[station] {
		if !snap.Timestamp.Before(from) && !snap.Timestamp.After(to) {
			result = append(result, snap)
		}
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
