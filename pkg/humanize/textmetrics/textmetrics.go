// Package textmetrics scores a text for the quality gate: surface counts,
// lexical diversity and an artificiality estimate based on the density of
// formulaic connector phrases. The validator treats these numbers as an
// opaque scoring function.
package textmetrics

import (
	"strings"
	"unicode"

	"github.com/prosekit/humanize/pkg/humanize/resources"
	"github.com/prosekit/humanize/pkg/humanize/segment"
)

// Metrics summarizes one text.
type Metrics struct {
	Words            int
	Sentences        int
	AvgSentenceWords float64
	LexicalDiversity float64 // unique tokens / total tokens
	Artificiality    float64 // 0 (plain) .. 1 (heavily formulaic)
}

// Analyze computes metrics for text in the given language.
func Analyze(text, language string) Metrics {
	tokens := Tokens(text)
	sentences := segment.Split(text, language)

	m := Metrics{
		Words:     len(tokens),
		Sentences: len(sentences),
	}
	if len(sentences) > 0 {
		m.AvgSentenceWords = float64(len(tokens)) / float64(len(sentences))
	}
	if len(tokens) > 0 {
		unique := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			unique[tok] = struct{}{}
		}
		m.LexicalDiversity = float64(len(unique)) / float64(len(tokens))
	}
	m.Artificiality = artificiality(text, language, len(sentences))
	return m
}

// artificiality measures how formulaic the text reads: filler phrase hits per
// sentence, with a small contribution from typographic em dashes, clamped to
// [0, 1].
func artificiality(text, language string, sentences int) float64 {
	lower := strings.ToLower(text)
	hits := 0
	for _, f := range resources.Get(language).Fillers() {
		hits += strings.Count(lower, f.Phrase)
	}
	dashes := strings.Count(text, "—")

	if sentences < 1 {
		sentences = 1
	}
	score := float64(hits)/float64(sentences) + 0.1*float64(dashes)/float64(sentences)
	if score > 1 {
		score = 1
	}
	return score
}

// Tokens splits text into lowercase word tokens. Unlike a search tokenizer it
// keeps stop words: comparison metrics need every word, not just the
// contentful ones.
func Tokens(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || ((r == '-' || r == '\'') && current.Len() > 0) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	out := tokens[:0]
	for _, tok := range tokens {
		tok = strings.Trim(tok, "-'")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
