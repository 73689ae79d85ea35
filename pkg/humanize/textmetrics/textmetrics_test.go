package textmetrics

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	got := Tokens("Hello, World! It's GPT-4 era.")
	want := []string{"hello", "world", "it's", "gpt-4", "era"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokensEmpty(t *testing.T) {
	if got := Tokens("  ...  "); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}

func TestAnalyzeCounts(t *testing.T) {
	m := Analyze("One two three. Four five six seven.", "en")
	if m.Words != 7 {
		t.Errorf("words = %d, want 7", m.Words)
	}
	if m.Sentences != 2 {
		t.Errorf("sentences = %d, want 2", m.Sentences)
	}
	if m.AvgSentenceWords != 3.5 {
		t.Errorf("avg = %v, want 3.5", m.AvgSentenceWords)
	}
	if m.LexicalDiversity != 1.0 {
		t.Errorf("diversity = %v, want 1.0", m.LexicalDiversity)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	m := Analyze("", "en")
	if m.Words != 0 || m.Sentences != 0 || m.AvgSentenceWords != 0 {
		t.Errorf("expected zero metrics, got %+v", m)
	}
}

func TestArtificialityDetectsFillers(t *testing.T) {
	plain := Analyze("The cat sat on the mat. It purred.", "en")
	formulaic := Analyze(
		"Furthermore, it is important to note that cats sit. Moreover, they purr in order to relax.", "en")

	if formulaic.Artificiality <= plain.Artificiality {
		t.Errorf("formulaic text should score higher: %v vs %v",
			formulaic.Artificiality, plain.Artificiality)
	}
	if formulaic.Artificiality > 1 || plain.Artificiality < 0 {
		t.Error("artificiality must stay in [0, 1]")
	}
}
