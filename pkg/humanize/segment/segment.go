// Package segment splits text into sentences. Splitting is deliberately
// conservative: a syntactically valid boundary inside an abbreviation, a
// decimal, a quotation or a placeholder token is suppressed, because an
// under-split sentence is recoverable while a corrupted abbreviation is not.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prosekit/humanize/pkg/humanize/protect"
	"github.com/prosekit/humanize/pkg/humanize/resources"
)

// Sentence is one segmented sentence with its position in the source text.
type Sentence struct {
	Text  string
	Start int
	End   int
	Index int
}

// terminators that may end a sentence.
func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '»', ')', ']':
		return true
	}
	return false
}

// zone is a half-open [start, end) range in which boundary candidates are
// suppressed.
type zone struct {
	start, end int
}

// Split segments text into sentences for the given language. Boundary
// candidates are terminator runs followed by whitespace; a candidate survives
// only if it is outside every protected zone and the next non-space character
// opens a sentence (uppercase, quote or bracket).
func Split(text, language string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	zones := protectedZones(text, language)
	inZone := func(pos int) bool {
		for _, z := range zones {
			if pos >= z.start && pos < z.end {
				return true
			}
		}
		return false
	}

	var sentences []Sentence
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTerminator(r) {
			i += size
			continue
		}

		// Swallow the whole terminator run plus closing quotes.
		end := i + size
		for end < len(text) {
			nr, nsize := utf8.DecodeRuneInString(text[end:])
			if isTerminator(nr) || isClosingQuote(nr) {
				end += nsize
				continue
			}
			break
		}

		// Must be followed by whitespace.
		if end >= len(text) {
			i = end
			continue
		}
		wr, wsize := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsSpace(wr) {
			i = end
			continue
		}

		// Zone suppression wins over a syntactically valid boundary.
		if inZone(i) {
			i = end
			continue
		}

		// The character after the whitespace must open a sentence.
		next := end + wsize
		for next < len(text) {
			nr, nsize := utf8.DecodeRuneInString(text[next:])
			if unicode.IsSpace(nr) {
				next += nsize
				continue
			}
			break
		}
		if next < len(text) {
			nr, _ := utf8.DecodeRuneInString(text[next:])
			if !unicode.IsUpper(nr) && !isOpeningProse(nr) {
				i = end
				continue
			}
		}

		sentences = append(sentences, Sentence{
			Text:  strings.TrimSpace(text[start:end]),
			Start: start,
			End:   end,
			Index: len(sentences),
		})
		start = next
		i = next
	}

	if strings.TrimSpace(text[start:]) != "" {
		sentences = append(sentences, Sentence{
			Text:  strings.TrimSpace(text[start:]),
			Start: start,
			End:   len(text),
			Index: len(sentences),
		})
	}
	return sentences
}

func isOpeningProse(r rune) bool {
	switch r {
	case '"', '\'', '“', '‘', '«', '(', '[':
		return true
	}
	return unicode.IsUpper(r)
}

// maxQuotedZone caps how long a quoted or parenthetical span may be and still
// suppress boundaries inside it.
const maxQuotedZone = 160

// protectedZones computes the ranges in which no boundary may fire:
// single-letter initials, known abbreviations, decimal/version/IP numbers,
// short quoted or parenthetical spans, and placeholder tokens.
func protectedZones(text, language string) []zone {
	var zones []zone

	res := resources.Get(language)

	// Abbreviations and initials: a dot directly after a known abbreviation
	// or a single letter.
	words := wordsWithDots(text)
	for _, w := range words {
		token := strings.ToLower(strings.TrimSuffix(text[w.start:w.end], "."))
		if len([]rune(token)) == 1 || res.IsAbbreviation(token) {
			zones = append(zones, zone{start: w.start, end: w.end})
		}
	}

	// Numbers: decimals, versions, IPs (digit.digit sequences).
	inNumber := false
	numStart := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		isNumByte := c >= '0' && c <= '9' || (inNumber && (c == '.' || c == ',' || c == ':') && i+1 < len(text) && text[i+1] >= '0' && text[i+1] <= '9')
		if isNumByte && !inNumber {
			inNumber = true
			numStart = i
		} else if !isNumByte && inNumber {
			if hasDotInside(text[numStart:i]) {
				zones = append(zones, zone{start: numStart, end: i})
			}
			inNumber = false
		}
	}
	if inNumber && hasDotInside(text[numStart:]) {
		zones = append(zones, zone{start: numStart, end: len(text)})
	}

	// Quoted and parenthetical spans up to a length cap.
	zones = append(zones, pairedZones(text, '"', '"')...)
	zones = append(zones, pairedZones(text, '(', ')')...)
	zones = append(zones, pairedZones(text, '“', '”')...)

	// Placeholder tokens.
	markerStart := -1
	for i := 0; i < len(text); i++ {
		if text[i] != protect.Marker {
			continue
		}
		if markerStart < 0 {
			markerStart = i
		} else {
			zones = append(zones, zone{start: markerStart, end: i + 1})
			markerStart = -1
		}
	}

	return zones
}

func hasDotInside(s string) bool {
	return strings.ContainsAny(s, ".:,")
}

type wordPos struct {
	start, end int
}

// wordsWithDots returns every whitespace-delimited word that ends with a dot.
func wordsWithDots(text string) []wordPos {
	var out []wordPos
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				if text[i-1] == '.' {
					out = append(out, wordPos{start: start, end: i})
				}
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 && text[len(text)-1] == '.' {
		out = append(out, wordPos{start: start, end: len(text)})
	}
	return out
}

func pairedZones(text string, open, closer rune) []zone {
	var zones []zone
	openAt := -1
	for i, r := range text {
		if r == open && (open != closer || openAt < 0) {
			openAt = i
			continue
		}
		if r == closer && openAt >= 0 {
			if i-openAt <= maxQuotedZone {
				zones = append(zones, zone{start: openAt, end: i + utf8.RuneLen(r)})
			}
			openAt = -1
		}
	}
	return zones
}

// Repair merges spurious boundaries back together: a sentence that starts
// lowercase, or has at most two words and no terminal punctuation, belongs to
// its predecessor.
func Repair(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if len(out) > 0 && shouldMerge(s) {
			out[len(out)-1] = out[len(out)-1] + " " + s
			continue
		}
		out = append(out, s)
	}
	return out
}

func shouldMerge(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsLower(r) {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	if !isTerminator(last) && len(strings.Fields(s)) <= 2 {
		return true
	}
	return false
}
