package stages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosekit/humanize/pkg/humanize/protect"
	"github.com/prosekit/humanize/pkg/humanize/stage"
)

func req(text string, intensity int, seed int64) stage.Request {
	return stage.Request{
		Text:      text,
		Language:  "en",
		Profile:   "standard",
		Intensity: intensity,
		Seed:      seed,
	}
}

func TestTypographyNormalizes(t *testing.T) {
	in := "“Quoted” text… with space  and ’apostrophe’"
	out, changes, err := Typography{}.Apply(context.Background(), req(in, 50, 1))

	require.NoError(t, err)
	assert.Equal(t, `"Quoted" text... with space and 'apostrophe'`, out)
	assert.NotEmpty(t, changes)
}

func TestTypographyRunsAtIntensityZero(t *testing.T) {
	out, _, err := Typography{}.Apply(context.Background(), req("a…b", 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "a...b", out)
}

func TestFillersRemovesConnectors(t *testing.T) {
	in := "It is important to note that the cache is warm."
	out, changes, err := Fillers{}.Apply(context.Background(), req(in, 100, 42))

	require.NoError(t, err)
	assert.Equal(t, "The cache is warm.", out)
	require.Len(t, changes, 1)
	assert.Equal(t, "fillers", changes[0].Stage)
}

func TestFillersIntensityZeroIsNoop(t *testing.T) {
	in := "Furthermore, nothing happens."
	out, changes, err := Fillers{}.Apply(context.Background(), req(in, 0, 42))

	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Empty(t, changes)
}

func TestFillersDeterministic(t *testing.T) {
	in := "Furthermore, it is important to note that testing matters. Moreover, seeds rule."
	r := req(in, 60, 42)

	first, _, err := Fillers{}.Apply(context.Background(), r)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, _, err := Fillers{}.Apply(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFillersHandlesCaseLengthChangingRunes(t *testing.T) {
	// U+0130 lowercases to a shorter byte sequence; matching must not rely
	// on offsets into a pre-lowered copy of the text.
	in := "İİİstanbul is lovely. Furthermore, it rains a lot in the winter x"
	out, changes, err := Fillers{}.Apply(context.Background(), req(in, 100, 42))

	require.NoError(t, err)
	assert.Contains(t, out, "İİİstanbul is lovely.")
	assert.NotContains(t, out, "Furthermore,")
	assert.Contains(t, out, "Also,")
	require.NotEmpty(t, changes)
	assert.Equal(t, "Furthermore,", changes[0].Original)
}

func TestSynonymsSubstitutes(t *testing.T) {
	in := "We utilize the tool."
	out, changes, err := Synonyms{}.Apply(context.Background(), req(in, 100, 7))

	require.NoError(t, err)
	assert.NotEqual(t, in, out)
	require.NotEmpty(t, changes)
	assert.Equal(t, "utilize", changes[0].Original)
}

func TestSynonymsCustomDictWins(t *testing.T) {
	s := Synonyms{CustomDict: map[string][]string{"utilize": {"wield"}}}
	out, _, err := s.Apply(context.Background(), req("They utilize hammers.", 100, 7))

	require.NoError(t, err)
	assert.Contains(t, out, "wield")
}

func TestSynonymsPreservesCase(t *testing.T) {
	s := Synonyms{CustomDict: map[string][]string{"utilize": {"wield"}}}
	out, _, err := s.Apply(context.Background(), req("Utilize hammers.", 100, 7))

	require.NoError(t, err)
	assert.Contains(t, out, "Wield")
}

func TestSynonymsSkipsPlaceholders(t *testing.T) {
	p := protect.New()
	protected, spans := p.Protect("Keep https://example.com and utilize tools.", protect.Rules{})
	require.True(t, protect.ContainsPlaceholder(protected))

	out, _, err := Synonyms{}.Apply(context.Background(), req(protected, 100, 7))
	require.NoError(t, err)
	assert.Contains(t, out, spans[0].Placeholder, "placeholder token must survive verbatim")
	assert.Equal(t, "Keep https://example.com and use tools.",
		strings.Replace(p.Restore(out, spans), "employ", "use", 1))
}

func TestContractionsFold(t *testing.T) {
	out, changes, err := Contractions{}.Apply(context.Background(), req("We do not agree. It is fine.", 100, 3))

	require.NoError(t, err)
	assert.Contains(t, out, "don't")
	assert.Contains(t, out, "It's")
	assert.NotEmpty(t, changes)
}

func TestContractionsAcademicNoop(t *testing.T) {
	r := req("We do not agree.", 100, 3)
	r.Profile = "academic"
	out, changes, err := Contractions{}.Apply(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, "We do not agree.", out)
	assert.Empty(t, changes)
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "Wield", matchCase("Utilize", "wield"))
	assert.Equal(t, "WIELD", matchCase("UTILIZE", "wield"))
	assert.Equal(t, "wield", matchCase("utilize", "wield"))
}
