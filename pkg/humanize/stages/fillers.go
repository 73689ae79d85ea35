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

// Fillers rewrites formulaic connector phrases ("furthermore,", "it is
// important to note that") into plainer forms, or drops them. Each occurrence
// is applied with a probability derived from intensity and profile. At
// intensity zero the stage is a no-op.
type Fillers struct{}

// Name implements stage.Stage.
func (Fillers) Name() string { return "fillers" }

// Apply implements stage.Stage.
func (f Fillers) Apply(ctx context.Context, req stage.Request) (string, []stage.Change, error) {
	if req.Intensity <= 0 {
		return req.Text, nil, nil
	}
	fillers := resources.Get(req.Language).Fillers()
	if len(fillers) == 0 {
		return req.Text, nil, nil
	}

	r := rng(req, f.Name())
	p := chance(req)
	text := req.Text

	var out strings.Builder
	var changes []stage.Change
	capitalizeNext := false
	i := 0
	for i < len(text) {
		matched := false
		for _, fl := range fillers {
			phrase := fl.Phrase
			// Compare in place: a pre-lowered copy of text can differ in
			// byte length (U+0130 folds to a shorter "i") and the offsets
			// would drift.
			if i+len(phrase) > len(text) || !strings.EqualFold(text[i:i+len(phrase)], phrase) {
				continue
			}
			original := text[i : i+len(phrase)]
			if protect.ContainsPlaceholder(original) {
				break
			}
			if r.Float64() >= p {
				break // keep this occurrence
			}

			replacement := fl.Replacement
			startsSentence := i == 0 || sentenceStart(text, i)
			if replacement != "" && startsSentence {
				replacement = matchCase(original, replacement)
			}
			out.WriteString(replacement)
			if replacement == "" && startsSentence {
				capitalizeNext = true
			}
			changes = append(changes, stage.Change{
				Stage:       f.Name(),
				Kind:        changeKind(replacement),
				Original:    strings.TrimSpace(original),
				Replacement: strings.TrimSpace(replacement),
				Description: "filler phrase",
			})
			i += len(phrase)
			matched = true
			break
		}
		if matched {
			continue
		}

		ch, size := utf8.DecodeRuneInString(text[i:])
		if capitalizeNext && unicode.IsLetter(ch) {
			out.WriteRune(unicode.ToUpper(ch))
			capitalizeNext = false
		} else {
			out.WriteString(text[i : i+size])
		}
		i += size
	}

	return out.String(), changes, nil
}

func changeKind(replacement string) string {
	if replacement == "" {
		return stage.KindRemove
	}
	return stage.KindReplace
}

// sentenceStart reports whether position i follows a sentence boundary or a
// line break.
func sentenceStart(text string, i int) bool {
	j := i - 1
	for j >= 0 && (text[j] == ' ' || text[j] == '\t') {
		j--
	}
	if j < 0 {
		return true
	}
	switch text[j] {
	case '.', '!', '?', '\n':
		return true
	}
	return false
}
