// Package protect shields structurally meaningful sub-strings (URLs, emails,
// code fences, numbers, caller-supplied keywords) from the transformation
// stages by swapping them for opaque placeholder tokens before any stage runs
// and swapping them back afterward.
//
// Placeholder tokens are built around a reserved control byte that legal text
// input never contains, so no stage substitution can accidentally produce or
// corrupt one. Restore is lossy-safe: a placeholder a stage duplicated or
// half-destroyed degrades to literal text instead of failing the run.
package protect

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Marker is the reserved control byte (ASCII SUB) that frames every
// placeholder token. Input text containing this byte voids the round-trip
// guarantee; stages must treat any sub-string containing it as atomic.
const Marker = '\x1a'

// Kind classifies what a protected span is.
type Kind string

const (
	KindURL     Kind = "url"
	KindEmail   Kind = "email"
	KindCode    Kind = "code"
	KindNumber  Kind = "number"
	KindKeyword Kind = "keyword"
	KindBrand   Kind = "brand"
)

// Span is one protected sub-string. It is created by Protect, consumed by
// Restore, and must not outlive the run that produced it.
type Span struct {
	Kind        Kind
	Original    string
	Placeholder string
	Start       int
	End         int
}

// Rules controls what Protect looks for beyond the structural patterns.
type Rules struct {
	Keywords        []string // exact, case-sensitive matches to protect
	BrandTerms      []string
	PreserveNumbers bool // protect decimal and ID-like numbers
}

var (
	urlRe    = regexp.MustCompile(`https?://[^\s<>"']+|www\.[^\s<>"']+`)
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	codeRe   = regexp.MustCompile("(?s)```.*?```|`[^`\n]+`")
	numberRe = regexp.MustCompile(`\d+[.,:]\d+(?:[.,:]\d+)*|\d{4,}`)
)

// Protector finds and replaces protected spans within one run. Not safe for
// concurrent use; each run gets its own Protector.
type Protector struct {
	counter int
}

// New creates a Protector with its counter at zero.
func New() *Protector {
	return &Protector{}
}

// Protect scans text left to right and replaces every protected sub-string
// with a unique placeholder token. Caller keywords and brand terms win over
// structural patterns when they overlap. Repeated identical matches get
// distinct tokens, so spans restore positionally.
func (p *Protector) Protect(text string, rules Rules) (string, []Span) {
	type match struct {
		start, end int
		kind       Kind
	}
	var matches []match

	literal := func(terms []string, kind Kind) {
		for _, term := range terms {
			if term == "" {
				continue
			}
			from := 0
			for {
				idx := strings.Index(text[from:], term)
				if idx < 0 {
					break
				}
				start := from + idx
				matches = append(matches, match{start: start, end: start + len(term), kind: kind})
				from = start + len(term)
			}
		}
	}
	literal(rules.Keywords, KindKeyword)
	literal(rules.BrandTerms, KindBrand)

	structural := func(re *regexp.Regexp, kind Kind) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, match{start: loc[0], end: loc[1], kind: kind})
		}
	}
	structural(codeRe, KindCode)
	structural(urlRe, KindURL)
	structural(emailRe, KindEmail)
	if rules.PreserveNumbers {
		structural(numberRe, KindNumber)
	}

	// Earlier-starting match wins; on a tie the longer one. Keywords and
	// brands were appended first, so stable sort keeps their priority on
	// exact overlaps.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})

	var spans []Span
	var out strings.Builder
	cursor := 0
	lastEnd := 0
	for _, m := range matches {
		if m.start < lastEnd {
			continue // overlaps an already-protected span
		}
		token := p.token(m.kind)
		out.WriteString(text[cursor:m.start])
		out.WriteString(token)
		spans = append(spans, Span{
			Kind:        m.kind,
			Original:    text[m.start:m.end],
			Placeholder: token,
			Start:       m.start,
			End:         m.end,
		})
		cursor = m.end
		lastEnd = m.end
	}
	out.WriteString(text[cursor:])
	return out.String(), spans
}

// Restore replaces every placeholder token with its original text. Tokens a
// stage removed are simply gone; tokens a stage duplicated are each replaced;
// a half-destroyed token no longer matches and stays behind as literal text.
func (p *Protector) Restore(text string, spans []Span) string {
	for _, s := range spans {
		text = strings.ReplaceAll(text, s.Placeholder, s.Original)
	}
	return text
}

// token builds the next placeholder: marker + category tag + counter + marker.
func (p *Protector) token(kind Kind) string {
	p.counter++
	return fmt.Sprintf("%c%s%04d%c", Marker, tag(kind), p.counter, Marker)
}

func tag(kind Kind) string {
	switch kind {
	case KindURL:
		return "U"
	case KindEmail:
		return "E"
	case KindCode:
		return "C"
	case KindNumber:
		return "N"
	case KindKeyword:
		return "K"
	case KindBrand:
		return "B"
	}
	return "X"
}

// ContainsPlaceholder reports whether s contains any part of a placeholder
// token. Stages must check this before mutating a candidate sub-string and
// leave the sub-string alone when it returns true.
func ContainsPlaceholder(s string) bool {
	return strings.IndexByte(s, Marker) >= 0
}
