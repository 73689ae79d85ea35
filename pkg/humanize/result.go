package humanize

import (
	"time"

	"github.com/prosekit/humanize/pkg/humanize/stage"
	"github.com/prosekit/humanize/pkg/humanize/textmetrics"
	"github.com/prosekit/humanize/pkg/humanize/validate"
)

// Result is the outcome of one run. Changes and timings are append-only
// records owned by the run; treat them as read-only.
type Result struct {
	RunID     string
	Original  string
	Text      string
	Language  string
	Profile   Profile
	Intensity int
	Seed      int64

	Changes       []stage.Change
	StageTimings  []stage.Timing
	MetricsBefore textmetrics.Metrics
	MetricsAfter  textmetrics.Metrics
	Verdict       validate.Verdict
	RolledBack    bool
	Elapsed       time.Duration
}

// ChangeRatio is the token-level symmetric difference between original and
// result over their union, counted as multisets. Always in [0, 1]; 0 when the
// original is empty or whitespace-only.
func (r *Result) ChangeRatio() float64 {
	return changeRatio(r.Original, r.Text)
}

// Similarity is the Jaccard index over lowercase token sets. 1 when both
// sides are empty, 0 when exactly one is.
func (r *Result) Similarity() float64 {
	return similarity(r.Original, r.Text)
}

// QualityScore is a bounded composite of similarity and change ratio. It
// penalizes both "nothing changed" and "total rewrite"; a moderate, meaning-
// preserving rewrite scores highest.
func (r *Result) QualityScore() float64 {
	cr := r.ChangeRatio()
	sim := r.Similarity()
	score := 0.6*sim + 0.4*(4*cr*(1-cr))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// SkippedStages lists the stages the runner isolated and skipped.
func (r *Result) SkippedStages() []string {
	var out []string
	for _, c := range r.Changes {
		if c.Kind == stage.KindSkipped {
			out = append(out, c.Stage)
		}
	}
	return out
}

func changeRatio(original, result string) float64 {
	a := tokenCounts(original)
	if len(a) == 0 {
		return 0
	}
	b := tokenCounts(result)

	union := 0
	diff := 0
	for tok, ca := range a {
		cb := b[tok]
		union += max(ca, cb)
		diff += abs(ca - cb)
	}
	for tok, cb := range b {
		if _, ok := a[tok]; !ok {
			union += cb
			diff += cb
		}
	}
	if union == 0 {
		return 0
	}
	ratio := float64(diff) / float64(union)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func similarity(original, result string) float64 {
	a := tokenCounts(original)
	b := tokenCounts(result)
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersect := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersect++
		}
	}
	union := len(a) + len(b) - intersect
	return float64(intersect) / float64(union)
}

func tokenCounts(text string) map[string]int {
	tokens := textmetrics.Tokens(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
