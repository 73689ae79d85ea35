package humanize

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/prosekit/humanize/pkg/humanize/segment"
	"github.com/prosekit/humanize/pkg/humanize/textmetrics"
)

// DefaultChunkSize is the chunk budget HumanizeChunked uses when none is
// given.
const DefaultChunkSize = 20_000

// ProgressFunc reports batch progress: completed items out of total.
// Called from worker goroutines, one call per finished item.
type ProgressFunc func(completed, total int)

// HumanizeBatch runs the pipeline over independent documents. Each item gets
// its own derived seed (base seed + index), so result i is reproducible
// regardless of worker count or scheduling, and results[i] always corresponds
// to items[i] no matter which worker finishes first.
//
// maxWorkers <= 1 processes items in order on the calling goroutine.
func (h *Humanizer) HumanizeBatch(ctx context.Context, items []string, opts Options, maxWorkers int, onProgress ProgressFunc) ([]*Result, error) {
	if _, err := opts.normalized(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(items))
	if len(items) == 0 {
		return results, nil
	}

	if maxWorkers <= 1 {
		for i, input := range items {
			res, err := h.Humanize(ctx, input, derivedOptions(opts, i))
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = res
			if onProgress != nil {
				onProgress(i+1, len(items))
			}
		}
		return results, nil
	}

	// Workers share nothing mutable: each run builds its own protector and
	// RNG state, and results land in a pre-sized slice by item index.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	var mu sync.Mutex
	completed := 0
	for i, input := range items {
		g.Go(func() error {
			res, err := h.Humanize(gctx, input, derivedOptions(opts, i))
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = res
			if onProgress != nil {
				mu.Lock()
				completed++
				done := completed
				mu.Unlock()
				onProgress(done, len(items))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func derivedOptions(opts Options, index int) Options {
	out := opts
	out.Seed = opts.Seed + int64(index)
	return out
}

// HumanizeChunked splits one large text at paragraph boundaries (falling back
// to sentence boundaries for oversized paragraphs, never mid-sentence),
// processes each chunk as an independent batch item, and merges the outputs
// back in original order.
func (h *Humanizer) HumanizeChunked(ctx context.Context, text string, chunkSize int, opts Options, maxWorkers int) (*Result, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	started := time.Now()
	chunks := chunkText(text, chunkSize, opts.Language)
	zerolog.Ctx(ctx).Debug().Int("chunks", len(chunks)).Int("chunk_size", chunkSize).Msg("chunked run")

	if len(chunks) == 1 {
		return h.Humanize(ctx, text, opts)
	}

	results, err := h.HumanizeBatch(ctx, chunks, opts, maxWorkers, nil)
	if err != nil {
		return nil, err
	}

	merged := &Result{
		RunID:     ulid.Make().String(),
		Original:  text,
		Language:  opts.Language,
		Profile:   opts.Profile,
		Intensity: opts.Intensity,
		Seed:      opts.Seed,
	}
	var out strings.Builder
	for _, res := range results {
		out.WriteString(res.Text)
		merged.Changes = append(merged.Changes, res.Changes...)
		merged.StageTimings = append(merged.StageTimings, res.StageTimings...)
		merged.Verdict.Errors = append(merged.Verdict.Errors, res.Verdict.Errors...)
		merged.Verdict.Warnings = append(merged.Verdict.Warnings, res.Verdict.Warnings...)
		if res.RolledBack {
			// The chunk already reverted to its original text; the merged
			// document keeps it and stays usable.
			merged.RolledBack = true
		}
	}
	merged.Text = out.String()
	merged.Verdict.IsValid = len(merged.Verdict.Errors) == 0
	merged.MetricsBefore = textmetrics.Analyze(text, opts.Language)
	merged.MetricsAfter = textmetrics.Analyze(merged.Text, opts.Language)
	merged.Elapsed = time.Since(started)
	return merged, nil
}

// chunkText splits text into pieces no longer than size where possible. The
// pieces concatenate back to exactly the input.
func chunkText(text string, size int, language string) []string {
	if len(text) <= size {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	add := func(piece string) {
		if current.Len() > 0 && current.Len()+len(piece) > size {
			flush()
		}
		current.WriteString(piece)
	}

	for _, para := range splitParagraphs(text) {
		if len(para) <= size {
			add(para)
			continue
		}
		flush()
		for _, piece := range splitAtSentences(para, size, language) {
			add(piece)
		}
	}
	flush()
	return chunks
}

// splitParagraphs splits text into paragraphs, each keeping its trailing
// blank lines so the pieces concatenate back to the input.
func splitParagraphs(text string) []string {
	var parts []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] == '\n' && text[i+1] == '\n' {
			j := i + 1
			for j < len(text) && text[j] == '\n' {
				j++
			}
			parts = append(parts, text[start:j])
			start = j
			i = j - 1
		}
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

// splitAtSentences cuts an oversized paragraph at sentence ends. A single
// sentence longer than size becomes its own piece; text is never cut
// mid-sentence.
func splitAtSentences(para string, size int, language string) []string {
	sentences := segment.Split(para, language)
	if len(sentences) == 0 {
		return []string{para}
	}

	var pieces []string
	lastCut := 0
	prevEnd := 0
	for _, s := range sentences {
		if s.End-lastCut > size && prevEnd > lastCut {
			pieces = append(pieces, para[lastCut:prevEnd])
			lastCut = prevEnd
		}
		prevEnd = s.End
	}
	pieces = append(pieces, para[lastCut:])
	return pieces
}
