package humanize

import (
	"fmt"
	"strings"

	"github.com/prosekit/humanize/pkg/humanize/internalerr"
)

// Profile is a named preset constraining how aggressively stages rewrite.
type Profile string

// The closed set of profiles. Anything else fails Options validation.
const (
	ProfileStandard Profile = "standard"
	ProfileWeb      Profile = "web"
	ProfileAcademic Profile = "academic"
	ProfileChat     Profile = "chat"
)

// Constraints bound what a run may do to the text.
type Constraints struct {
	// KeepKeywords are protected verbatim and re-checked by the validator.
	KeepKeywords []string
	// MaxChangeRatio rolls the run back when exceeded; <= 0 disables it.
	MaxChangeRatio float64
}

// Preserve flags sub-strings that must survive all stages unmodified.
type Preserve struct {
	Numbers    bool
	BrandTerms []string
}

// Options configures one run. Immutable once handed to the Humanizer: the
// pipeline works on a normalized copy and never writes back.
type Options struct {
	// Language of the input text, ISO code. Empty means "en".
	Language string
	// Profile selects the rewrite preset. Empty means ProfileStandard;
	// unknown values are rejected at validation, never silently defaulted.
	Profile Profile
	// Intensity is the 0..100 aggressiveness dial. Out-of-range values are
	// clamped, not rejected.
	Intensity int
	// Seed makes the run reproducible. The zero value is a valid seed, so
	// every run is deterministic by default.
	Seed int64

	Constraints Constraints
	Preserve    Preserve

	// CustomDict extends the synonym table, keyed by lowercase word.
	CustomDict map[string][]string
}

// normalized validates the options and returns a copy with defaults filled in
// and intensity clamped.
func (o Options) normalized() (Options, error) {
	out := o

	out.Language = strings.TrimSpace(out.Language)
	if out.Language == "" {
		out.Language = "en"
	}

	switch out.Profile {
	case "":
		out.Profile = ProfileStandard
	case ProfileStandard, ProfileWeb, ProfileAcademic, ProfileChat:
	default:
		return out, fmt.Errorf("%w: %q", internalerr.ErrUnknownProfile, o.Profile)
	}

	if out.Intensity < 0 {
		out.Intensity = 0
	}
	if out.Intensity > 100 {
		out.Intensity = 100
	}

	return out, nil
}
