// Package memstore is an in-memory implementation of history.Store for tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prosekit/humanize/pkg/humanize/history"
)

// Store is an in-memory history.Store.
type Store struct {
	mu   sync.RWMutex
	runs []history.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements history.Store.
func (s *Store) Close() error { return nil }

// RecordRun implements history.Store.
func (s *Store) RecordRun(ctx context.Context, r history.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.runs = append(s.runs, r)
	return nil
}

// RecentRuns implements history.Store.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]history.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 20
	}

	out := make([]history.Run, len(s.runs))
	copy(out, s.runs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ProfileStats implements history.Store.
func (s *Store) ProfileStats(ctx context.Context, profile string) (history.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st history.Stats
	var ratioSum, qualitySum float64
	for _, r := range s.runs {
		if r.Profile != profile {
			continue
		}
		st.Runs++
		if r.RolledBack {
			st.Rollbacks++
		}
		ratioSum += r.ChangeRatio
		qualitySum += r.QualityScore
	}
	if st.Runs > 0 {
		st.AvgChangeRatio = ratioSum / float64(st.Runs)
		st.AvgQuality = qualitySum / float64(st.Runs)
	}
	return st, nil
}
