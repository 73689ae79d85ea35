package stages

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prosekit/humanize/pkg/humanize/protect"
	"github.com/prosekit/humanize/pkg/humanize/resources"
	"github.com/prosekit/humanize/pkg/humanize/stage"
)

// Synonyms swaps words for alternatives from the language synonym table and
// the caller's custom dictionary. Placeholder tokens are copied through
// verbatim; word matching is case-insensitive with casing preserved.
type Synonyms struct {
	// CustomDict extends (and overrides) the language table, keyed by
	// lowercase word.
	CustomDict map[string][]string
}

// Name implements stage.Stage.
func (Synonyms) Name() string { return "synonyms" }

// Apply implements stage.Stage.
func (s Synonyms) Apply(ctx context.Context, req stage.Request) (string, []stage.Change, error) {
	if req.Intensity <= 0 {
		return req.Text, nil, nil
	}
	res := resources.Get(req.Language)

	r := rng(req, s.Name())
	p := chance(req)
	text := req.Text

	var out strings.Builder
	var changes []stage.Change
	i := 0
	for i < len(text) {
		// Placeholder tokens pass through whole.
		if text[i] == protect.Marker {
			end := strings.IndexByte(text[i+1:], protect.Marker)
			if end < 0 {
				out.WriteString(text[i:])
				break
			}
			out.WriteString(text[i : i+end+2])
			i += end + 2
			continue
		}

		ch, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(ch) {
			out.WriteString(text[i : i+size])
			i += size
			continue
		}

		start := i
		for i < len(text) {
			wr, wsize := utf8.DecodeRuneInString(text[i:])
			if !isWordRune(wr) {
				break
			}
			i += wsize
		}
		word := text[start:i]
		lower := strings.ToLower(word)

		alternatives := s.CustomDict[lower]
		if len(alternatives) == 0 {
			alternatives = res.SynonymsFor(lower)
		}
		if len(alternatives) == 0 || r.Float64() >= p {
			out.WriteString(word)
			continue
		}

		replacement := matchCase(word, alternatives[r.Intn(len(alternatives))])
		out.WriteString(replacement)
		changes = append(changes, stage.Change{
			Stage:       s.Name(),
			Kind:        stage.KindReplace,
			Original:    word,
			Replacement: replacement,
			Description: "synonym substitution",
		})
	}

	return out.String(), changes, nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '-'
}
