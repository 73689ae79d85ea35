// Package validate is the quality gate at the end of a run: it compares the
// transformed text against the original and decides whether the run is
// accepted or rolled back. A rollback is a normal verdict, never an error.
package validate

import (
	"fmt"
	"strings"

	"github.com/prosekit/humanize/pkg/humanize/textmetrics"
)

// Verdict is the validator's decision. Errors explain rollbacks; warnings
// flag drift that stayed inside the hard bounds.
type Verdict struct {
	IsValid        bool
	ShouldRollback bool
	Errors         []string
	Warnings       []string
}

// Input carries everything the validator compares.
type Input struct {
	Original       string
	Result         string
	Before         textmetrics.Metrics
	After          textmetrics.Metrics
	ChangeRatio    float64
	MaxChangeRatio float64  // <= 0 disables the change-ratio bound
	KeepKeywords   []string // must appear verbatim in Result
}

const (
	// changeRatioTolerance keeps a run that barely grazes the configured
	// bound from flapping between accept and rollback.
	changeRatioTolerance = 0.05

	// Artificiality may worsen a little (warning) but not cross the ceiling.
	artificialityDrift   = 0.10
	artificialityCeiling = 0.85

	// Output length must stay within a generous band of the original.
	minLengthRatio = 0.4
	maxLengthRatio = 2.5
)

// Check runs every bound independently; any failed hard bound sets
// ShouldRollback.
func Check(in Input) Verdict {
	var v Verdict

	if in.MaxChangeRatio > 0 && in.ChangeRatio > in.MaxChangeRatio+changeRatioTolerance {
		v.Errors = append(v.Errors, fmt.Sprintf(
			"change ratio %.3f exceeds limit %.3f", in.ChangeRatio, in.MaxChangeRatio))
		v.ShouldRollback = true
	}

	if drift := in.After.Artificiality - in.Before.Artificiality; drift > artificialityDrift {
		if in.After.Artificiality > artificialityCeiling {
			v.Errors = append(v.Errors, fmt.Sprintf(
				"artificiality %.2f crossed ceiling %.2f", in.After.Artificiality, artificialityCeiling))
			v.ShouldRollback = true
		} else {
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"artificiality worsened by %.2f", drift))
		}
	}

	if len(in.Original) > 0 {
		ratio := float64(len(in.Result)) / float64(len(in.Original))
		if ratio < minLengthRatio || ratio > maxLengthRatio {
			v.Errors = append(v.Errors, fmt.Sprintf(
				"length ratio %.2f outside [%.2f, %.2f]", ratio, minLengthRatio, maxLengthRatio))
			v.ShouldRollback = true
		}
	}

	// Protected spans should make missing keywords unreachable; re-check as a
	// second line of defense.
	for _, kw := range in.KeepKeywords {
		if kw == "" {
			continue
		}
		if !strings.Contains(in.Result, kw) {
			v.Errors = append(v.Errors, fmt.Sprintf("required keyword %q missing from output", kw))
			v.ShouldRollback = true
		}
	}

	v.IsValid = len(v.Errors) == 0
	return v
}
