package stages

import (
	"context"
	"regexp"

	"github.com/prosekit/humanize/pkg/humanize/protect"
	"github.com/prosekit/humanize/pkg/humanize/resources"
	"github.com/prosekit/humanize/pkg/humanize/stage"
)

// Contractions folds full verb forms into their contracted forms ("do not" →
// "don't") to loosen the register. The academic profile keeps full forms and
// the stage no-ops there.
type Contractions struct{}

// Name implements stage.Stage.
func (Contractions) Name() string { return "contractions" }

// Apply implements stage.Stage.
func (c Contractions) Apply(ctx context.Context, req stage.Request) (string, []stage.Change, error) {
	if req.Intensity <= 0 || req.Profile == "academic" {
		return req.Text, nil, nil
	}
	pairs := resources.Get(req.Language).Contractions()
	if len(pairs) == 0 {
		return req.Text, nil, nil
	}

	r := rng(req, c.Name())
	p := chance(req)
	text := req.Text
	var changes []stage.Change

	for _, pair := range pairs {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(pair.Full) + `\b`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			if protect.ContainsPlaceholder(match) {
				return match
			}
			if r.Float64() >= p {
				return match
			}
			replacement := matchCase(match, pair.Short)
			changes = append(changes, stage.Change{
				Stage:       c.Name(),
				Kind:        stage.KindReplace,
				Original:    match,
				Replacement: replacement,
				Description: "contraction",
			})
			return replacement
		})
	}

	return text, changes, nil
}
