package stages

import (
	"context"
	"regexp"
	"strings"

	"github.com/prosekit/humanize/pkg/humanize/stage"
)

// Typography normalizes punctuation that tends to mark machine-written text:
// typographic quotes, em dashes, the ellipsis rune, doubled spaces. It is
// purely mechanical, uses no randomness, and runs even at intensity zero.
type Typography struct{}

// Name implements stage.Stage.
func (Typography) Name() string { return "typography" }

var (
	multiSpaceRe     = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforePunct = regexp.MustCompile(` +([,.;:!?])`)
)

var typographyPairs = []struct {
	from, to, desc string
}{
	{"“", `"`, "left double quote"},
	{"”", `"`, "right double quote"},
	{"‘", "'", "left single quote"},
	{"’", "'", "apostrophe quote"},
	{"—", " - ", "em dash"},
	{"–", "-", "en dash"},
	{"…", "...", "ellipsis rune"},
	{" ", " ", "non-breaking space"},
}

// Apply implements stage.Stage.
func (t Typography) Apply(ctx context.Context, req stage.Request) (string, []stage.Change, error) {
	text := req.Text
	var changes []stage.Change

	for _, p := range typographyPairs {
		count := strings.Count(text, p.from)
		if count == 0 {
			continue
		}
		text = strings.ReplaceAll(text, p.from, p.to)
		changes = append(changes, stage.Change{
			Stage:       t.Name(),
			Kind:        stage.KindReplace,
			Original:    p.from,
			Replacement: p.to,
			Description: p.desc,
		})
	}

	if cleaned := spaceBeforePunct.ReplaceAllString(text, "$1"); cleaned != text {
		text = cleaned
		changes = append(changes, stage.Change{
			Stage:       t.Name(),
			Kind:        stage.KindRemove,
			Description: "space before punctuation",
		})
	}
	if cleaned := multiSpaceRe.ReplaceAllString(text, " "); cleaned != text {
		text = cleaned
		changes = append(changes, stage.Change{
			Stage:       t.Name(),
			Kind:        stage.KindReplace,
			Description: "collapsed repeated spaces",
		})
	}

	return text, changes, nil
}
