package stage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Timing records how long one stage took, failed attempts included.
type Timing struct {
	Stage   string
	Elapsed time.Duration
}

// Run invokes one stage and isolates its failures. On success it returns the
// stage's output unchanged. On any error or panic it returns the input text
// unmodified plus exactly one stage_skipped change, so the pipeline continues
// as if the stage were absent. The returned timing covers the attempt either
// way.
func Run(ctx context.Context, s Stage, req Request) (out string, changes []Change, timing Timing) {
	logger := zerolog.Ctx(ctx)
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			timing = Timing{Stage: s.Name(), Elapsed: time.Since(started)}
			out = req.Text
			changes = []Change{skipped(s.Name(), fmt.Errorf("panic: %v", r))}
			logger.Warn().Str("stage", s.Name()).Interface("panic", r).Msg("stage panicked, skipping")
		}
	}()

	result, stageChanges, err := s.Apply(ctx, req)
	timing = Timing{Stage: s.Name(), Elapsed: time.Since(started)}
	if err != nil {
		logger.Warn().Str("stage", s.Name()).Err(err).Msg("stage failed, skipping")
		return req.Text, []Change{skipped(s.Name(), err)}, timing
	}

	logger.Debug().
		Str("stage", s.Name()).
		Int("changes", len(stageChanges)).
		Dur("elapsed", timing.Elapsed).
		Msg("stage applied")
	return result, stageChanges, timing
}

func skipped(name string, err error) Change {
	return Change{
		Stage:       name,
		Kind:        KindSkipped,
		Description: err.Error(),
	}
}
