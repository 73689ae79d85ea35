// Package humanize rewrites text through an ordered sequence of
// transformation stages while guaranteeing three properties no single stage
// provides alone: protected sub-strings (URLs, emails, numbers, configured
// keywords) survive every stage untouched, a failing stage degrades to a
// no-op instead of aborting the run, and output violating the configured
// quality bounds is rolled back to the original text.
//
// The pipeline for one run is linear:
//
//	protect → stage 1..n (hooks interleaved) → restore → metrics → validate
//
// Runs are deterministic: the same text and options, seed included, produce
// byte-identical output. Batch and chunked execution layer a bounded worker
// pool on top without disturbing per-item determinism.
package humanize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/prosekit/humanize/pkg/humanize/history"
	"github.com/prosekit/humanize/pkg/humanize/internalerr"
	"github.com/prosekit/humanize/pkg/humanize/protect"
	"github.com/prosekit/humanize/pkg/humanize/stage"
	"github.com/prosekit/humanize/pkg/humanize/textmetrics"
	"github.com/prosekit/humanize/pkg/humanize/validate"
)

// DefaultMaxInputSize bounds input length in bytes. Oversized input is the
// one fatal, non-isolated failure besides invalid options: nothing downstream
// is meaningful without a bounded buffer.
const DefaultMaxInputSize = 500_000

// Config configures a Humanizer instance.
type Config struct {
	// MaxInputSize in bytes; 0 means DefaultMaxInputSize.
	MaxInputSize int
	// History records run summaries when non-nil. Recording failures are
	// logged, never fatal.
	History history.Store
}

// Humanizer drives the transformation pipeline. Safe for concurrent use: all
// per-run state (protector, RNG, change records) is created fresh inside
// each run.
type Humanizer struct {
	maxInput int
	store    history.Store
	hooks    *stage.Registry
}

// New creates a Humanizer.
func New(cfg Config) *Humanizer {
	maxInput := cfg.MaxInputSize
	if maxInput <= 0 {
		maxInput = DefaultMaxInputSize
	}
	return &Humanizer{
		maxInput: maxInput,
		store:    cfg.History,
		hooks:    stage.NewRegistry(coreStageNames()),
	}
}

// phase names the orchestrator's linear states, for logging and tracing.
type phase string

const (
	phaseProtecting phase = "protecting"
	phaseRunning    phase = "running"
	phaseRestoring  phase = "restoring"
	phaseValidating phase = "validating"
	phaseAccepted   phase = "accepted"
	phaseRolledBack phase = "rolled_back"
)

// Humanize runs the full pipeline over text. Only invalid options and
// oversized input surface as errors; everything else (stage failures,
// quality rollbacks) is absorbed into the Result's change records.
func (h *Humanizer) Humanize(ctx context.Context, text string, opts Options) (*Result, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if len(text) > h.maxInput {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", internalerr.ErrInputTooLarge, len(text), h.maxInput)
	}

	logger := zerolog.Ctx(ctx)
	started := time.Now()
	result := &Result{
		RunID:     ulid.Make().String(),
		Original:  text,
		Text:      text,
		Language:  opts.Language,
		Profile:   opts.Profile,
		Intensity: opts.Intensity,
		Seed:      opts.Seed,
	}

	// Empty and whitespace-only input short-circuits unchanged, as an
	// accepted no-op run.
	if strings.TrimSpace(text) == "" {
		result.Verdict.IsValid = true
		result.Elapsed = time.Since(started)
		return result, nil
	}

	result.MetricsBefore = textmetrics.Analyze(text, opts.Language)

	logger.Debug().Str("run", result.RunID).Str("phase", string(phaseProtecting)).Msg("run state")
	protector := protect.New()
	current, spans := protector.Protect(text, protect.Rules{
		Keywords:        opts.Constraints.KeepKeywords,
		BrandTerms:      opts.Preserve.BrandTerms,
		PreserveNumbers: opts.Preserve.Numbers,
	})

	logger.Debug().Str("run", result.RunID).Str("phase", string(phaseRunning)).Int("spans", len(spans)).Msg("run state")
	for _, s := range h.resolveStages(opts) {
		req := stage.Request{
			Text:      current,
			Language:  opts.Language,
			Profile:   string(opts.Profile),
			Intensity: opts.Intensity,
			Seed:      opts.Seed,
		}
		out, changes, timing := stage.Run(ctx, s, req)
		current = out
		result.Changes = append(result.Changes, changes...)
		result.StageTimings = append(result.StageTimings, timing)
	}

	logger.Debug().Str("run", result.RunID).Str("phase", string(phaseRestoring)).Msg("run state")
	result.Text = protector.Restore(current, spans)
	result.MetricsAfter = textmetrics.Analyze(result.Text, opts.Language)

	logger.Debug().Str("run", result.RunID).Str("phase", string(phaseValidating)).Msg("run state")
	result.Verdict = validate.Check(validate.Input{
		Original:       text,
		Result:         result.Text,
		Before:         result.MetricsBefore,
		After:          result.MetricsAfter,
		ChangeRatio:    changeRatio(text, result.Text),
		MaxChangeRatio: opts.Constraints.MaxChangeRatio,
		KeepKeywords:   opts.Constraints.KeepKeywords,
	})

	final := phaseAccepted
	if result.Verdict.ShouldRollback {
		final = phaseRolledBack
		result.RolledBack = true
		result.Text = text
		result.MetricsAfter = result.MetricsBefore
		result.Changes = append(result.Changes, stage.Change{
			Stage:       "validator",
			Kind:        stage.KindRollback,
			Description: strings.Join(result.Verdict.Errors, "; "),
		})
	}
	result.Elapsed = time.Since(started)

	logger.Debug().
		Str("run", result.RunID).
		Str("phase", string(final)).
		Int("changes", len(result.Changes)).
		Dur("elapsed", result.Elapsed).
		Msg("run state")

	h.record(ctx, result)
	return result, nil
}

// record writes the run summary to the history store, when one is configured.
func (h *Humanizer) record(ctx context.Context, r *Result) {
	if h.store == nil {
		return
	}
	run := history.Run{
		ID:           r.RunID,
		CreatedAt:    time.Now().UTC(),
		Language:     r.Language,
		Profile:      string(r.Profile),
		Intensity:    r.Intensity,
		Seed:         r.Seed,
		InputChars:   len(r.Original),
		ChangeRatio:  r.ChangeRatio(),
		Similarity:   r.Similarity(),
		QualityScore: r.QualityScore(),
		RolledBack:   r.RolledBack,
		Changes:      len(r.Changes),
		Skipped:      len(r.SkippedStages()),
		ElapsedMS:    r.Elapsed.Milliseconds(),
	}
	if err := h.store.RecordRun(ctx, run); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("run", r.RunID).Msg("recording run history failed")
	}
}
