// Package resources provides per-language lookup tables consumed by the
// segmenter and the transformation stages: stop words, abbreviations, synonym
// groups, filler phrases and contraction pairs.
//
// Tables are built lazily, once per language, behind a process-wide lock.
// After initialization a table is read-only and safe for concurrent readers;
// concurrent first access never produces duplicate tables.
package resources

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/prosekit/humanize/pkg/humanize/internalerr"
)

// Table holds the read-only resources for one language.
type Table struct {
	Language      string
	stopWords     map[string]struct{}
	abbreviations map[string]struct{}
	synonyms      map[string][]string
	fillers       []Filler
	contractions  []Contraction
}

// Filler maps a formulaic connector phrase to its plainer replacement.
// An empty replacement drops the phrase.
type Filler struct {
	Phrase      string
	Replacement string
}

// Contraction maps a full form to its contracted form.
type Contraction struct {
	Full  string
	Short string
}

// IsStopWord reports whether the lowercase token is a stop word.
func (t *Table) IsStopWord(token string) bool {
	_, ok := t.stopWords[token]
	return ok
}

// IsAbbreviation reports whether the lowercase token (without its trailing
// dot) is a known abbreviation.
func (t *Table) IsAbbreviation(token string) bool {
	_, ok := t.abbreviations[token]
	return ok
}

// SynonymsFor returns the alternatives for a lowercase token, or nil.
func (t *Table) SynonymsFor(token string) []string {
	return t.synonyms[token]
}

// Fillers returns the filler phrase list, longest phrase first.
func (t *Table) Fillers() []Filler {
	return t.fillers
}

// Contractions returns the contraction pairs.
func (t *Table) Contractions() []Contraction {
	return t.contractions
}

var (
	mu     sync.Mutex
	tables = make(map[string]*Table)
)

// Get returns the table for a language, building it on first access. The
// first caller pays the build cost; every later caller, concurrent ones
// included, observes the same table. Unknown languages get an empty table so
// the pipeline still runs, just without lexical resources.
func Get(language string) *Table {
	key := normalizeLang(language)

	mu.Lock()
	defer mu.Unlock()
	if t, ok := tables[key]; ok {
		return t
	}

	var t *Table
	switch key {
	case "en":
		t = english()
	default:
		t = &Table{
			Language:      key,
			stopWords:     map[string]struct{}{},
			abbreviations: map[string]struct{}{},
			synonyms:      map[string][]string{},
		}
	}
	tables[key] = t
	return t
}

// Reset clears all cached tables. Intended for tests that load overlays.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	tables = make(map[string]*Table)
}

func normalizeLang(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return "en"
	}
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	return lang
}

// Overlay is the YAML shape for extending a language table.
//
// Example:
//
//	stop_words: [the, a, an]
//	abbreviations: [approx, dept]
//	synonyms:
//	  - canonical: use
//	    variants: [utilize, employ]
//	fillers:
//	  - phrase: "needless to say, "
//	    replacement: ""
type Overlay struct {
	StopWords     []string `yaml:"stop_words"`
	Abbreviations []string `yaml:"abbreviations"`
	Synonyms      []struct {
		Canonical string   `yaml:"canonical"`
		Variants  []string `yaml:"variants"`
	} `yaml:"synonyms"`
	Fillers []struct {
		Phrase      string `yaml:"phrase"`
		Replacement string `yaml:"replacement"`
	} `yaml:"fillers"`
}

// LoadOverlay reads a YAML overlay file and merges it into the table for the
// given language. Must be called before the first Get for that language
// elsewhere, or the overlay applies to the already-shared table.
func LoadOverlay(language, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading overlay: %v", internalerr.ErrInvalidConfig, err)
	}

	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("%w: parsing overlay: %v", internalerr.ErrInvalidConfig, err)
	}

	t := Get(language)
	mu.Lock()
	defer mu.Unlock()
	for _, w := range ov.StopWords {
		t.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, a := range ov.Abbreviations {
		t.abbreviations[strings.ToLower(strings.TrimSuffix(a, "."))] = struct{}{}
	}
	for _, group := range ov.Synonyms {
		canonical := strings.ToLower(group.Canonical)
		for _, v := range group.Variants {
			variant := strings.ToLower(v)
			t.synonyms[variant] = appendUnique(t.synonyms[variant], canonical)
			t.synonyms[canonical] = appendUnique(t.synonyms[canonical], variant)
		}
	}
	for _, f := range ov.Fillers {
		t.fillers = append(t.fillers, Filler{Phrase: f.Phrase, Replacement: f.Replacement})
	}
	return nil
}

func appendUnique(list []string, val string) []string {
	for _, v := range list {
		if v == val {
			return list
		}
	}
	return append(list, val)
}
