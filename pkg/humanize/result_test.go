package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeRatioBounds(t *testing.T) {
	cases := []struct {
		name     string
		original string
		result   string
		want     float64
	}{
		{"identical", "the quick brown fox", "the quick brown fox", 0},
		{"empty original", "", "anything at all", 0},
		{"whitespace original", "   \n", "anything", 0},
		{"disjoint", "alpha beta", "gamma delta", 1},
		{"one swapped", "alpha beta", "alpha gamma", 2.0 / 3.0},
		{"one added", "alpha beta", "alpha beta gamma", 1.0 / 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := changeRatio(tc.original, tc.result)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestChangeRatioCountsMultiplicity(t *testing.T) {
	// One of two occurrences removed still registers as a change.
	got := changeRatio("go go stop", "go stop")
	assert.Greater(t, got, 0.0)
}

func TestSimilarityEdges(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 0.0, similarity("words here", ""))
	assert.Equal(t, 0.0, similarity("", "words here"))
	assert.Equal(t, 1.0, similarity("Same Words", "same words"))
	assert.InDelta(t, 1.0/3.0, similarity("alpha beta", "beta gamma"), 1e-9)
}

func TestQualityScoreBounded(t *testing.T) {
	pairs := [][2]string{
		{"unchanged text", "unchanged text"},
		{"completely", "different"},
		{"a moderate rewrite of this text", "a gentle rework of this text"},
		{"", ""},
	}
	for _, p := range pairs {
		r := &Result{Original: p[0], Text: p[1]}
		score := r.QualityScore()
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}

	// An identical pair scores exactly the similarity weight.
	r := &Result{Original: "stable text", Text: "stable text"}
	assert.InDelta(t, 0.6, r.QualityScore(), 1e-9)
}
