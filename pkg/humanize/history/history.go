// Package history persists run summaries for offline tuning and audit. The
// pipeline works without it; a nil store simply disables recording.
package history

import (
	"context"
	"time"
)

// Run is one recorded pipeline run.
type Run struct {
	ID           string // ULID
	CreatedAt    time.Time
	Language     string
	Profile      string
	Intensity    int
	Seed         int64
	InputChars   int
	ChangeRatio  float64
	Similarity   float64
	QualityScore float64
	RolledBack   bool
	Changes      int
	Skipped      int
	ElapsedMS    int64
}

// Stats aggregates runs for one profile.
type Stats struct {
	Runs           int64
	Rollbacks      int64
	AvgChangeRatio float64
	AvgQuality     float64
}

// Store is the interface for persisting and querying run history.
type Store interface {
	Close() error

	RecordRun(ctx context.Context, r Run) error
	RecentRuns(ctx context.Context, limit int) ([]Run, error)
	ProfileStats(ctx context.Context, profile string) (Stats, error)
}
