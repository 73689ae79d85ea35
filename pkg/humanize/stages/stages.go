// Package stages ships the built-in transformation stages: typography
// normalization, filler-phrase reduction, synonym substitution and
// contraction insertion. Each satisfies the stage contract, derives its
// randomness only from the request seed, and refuses to touch placeholder
// tokens.
package stages

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prosekit/humanize/pkg/humanize/stage"
)

// Core returns the core stage list in pipeline order.
func Core() []stage.Stage {
	return []stage.Stage{
		Typography{},
		Fillers{},
		Synonyms{},
		Contractions{},
	}
}

// rng builds the per-stage generator. The stage name is folded into the seed
// so stages sharing one run seed still draw independent sequences, while the
// whole run stays a pure function of (text, options).
func rng(req stage.Request, name string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(req.Seed ^ int64(h.Sum64())))
}

// aggressiveness maps a profile to a multiplier on the intensity-derived
// change probability. Unknown profiles were already rejected upstream; the
// default keeps stages usable standalone.
func aggressiveness(profile string) float64 {
	switch profile {
	case "academic":
		return 0.6
	case "web":
		return 1.0
	case "chat":
		return 1.25
	default: // standard
		return 1.0
	}
}

// chance is the per-occurrence probability of applying a lexical change.
func chance(req stage.Request) float64 {
	p := float64(req.Intensity) / 100.0 * aggressiveness(req.Profile)
	if p > 1 {
		p = 1
	}
	return p
}

// matchCase shapes replacement after the casing of original: all-caps stays
// all-caps, a capitalized first letter stays capitalized.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if strings.ToUpper(original) == original && len([]rune(original)) > 1 {
		return strings.ToUpper(replacement)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(replacement)
		return string(unicode.ToUpper(r)) + replacement[size:]
	}
	return replacement
}
