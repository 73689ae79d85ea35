package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prosekit/humanize/pkg/humanize/textmetrics"
)

func TestCheckAccepts(t *testing.T) {
	v := Check(Input{
		Original:       "The team will use many tools.",
		Result:         "The team will wield many tools.",
		ChangeRatio:    0.15,
		MaxChangeRatio: 0.5,
	})
	assert.True(t, v.IsValid)
	assert.False(t, v.ShouldRollback)
	assert.Empty(t, v.Errors)
}

func TestCheckChangeRatioBound(t *testing.T) {
	// Within the tolerance margin: accepted.
	v := Check(Input{Original: "a b c", Result: "a b d", ChangeRatio: 0.53, MaxChangeRatio: 0.5})
	assert.False(t, v.ShouldRollback)

	// Beyond tolerance: rollback.
	v = Check(Input{Original: "a b c", Result: "x y z", ChangeRatio: 0.9, MaxChangeRatio: 0.5})
	assert.True(t, v.ShouldRollback)
	assert.False(t, v.IsValid)
	assert.NotEmpty(t, v.Errors)
}

func TestCheckChangeRatioDisabled(t *testing.T) {
	v := Check(Input{Original: "a", Result: "b", ChangeRatio: 1.0, MaxChangeRatio: 0})
	assert.False(t, v.ShouldRollback)
}

func TestCheckArtificialityDriftWarns(t *testing.T) {
	v := Check(Input{
		Original: "text",
		Result:   "text'",
		Before:   textmetrics.Metrics{Artificiality: 0.2},
		After:    textmetrics.Metrics{Artificiality: 0.5},
	})
	assert.False(t, v.ShouldRollback, "drift below ceiling is a warning")
	assert.NotEmpty(t, v.Warnings)
}

func TestCheckArtificialityCeiling(t *testing.T) {
	v := Check(Input{
		Original: "text",
		Result:   "text'",
		Before:   textmetrics.Metrics{Artificiality: 0.2},
		After:    textmetrics.Metrics{Artificiality: 0.9},
	})
	assert.True(t, v.ShouldRollback)
}

func TestCheckLengthRatio(t *testing.T) {
	long := "This sentence repeats itself over and over and over again for padding."
	v := Check(Input{Original: long, Result: "x"})
	assert.True(t, v.ShouldRollback, "output collapsed below 40% of input")

	v = Check(Input{Original: "short", Result: long + long})
	assert.True(t, v.ShouldRollback, "output ballooned past 250% of input")
}

func TestCheckKeepKeywords(t *testing.T) {
	v := Check(Input{
		Original:     "BrandX launches today.",
		Result:       "The product launches today.",
		KeepKeywords: []string{"BrandX"},
	})
	assert.True(t, v.ShouldRollback)
	assert.Contains(t, v.Errors[0], "BrandX")

	v = Check(Input{
		Original:     "BrandX launches today.",
		Result:       "BrandX ships today.",
		KeepKeywords: []string{"BrandX"},
	})
	assert.False(t, v.ShouldRollback)
}
