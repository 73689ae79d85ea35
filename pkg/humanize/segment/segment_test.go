package segment

import (
	"strings"
	"testing"
)

func texts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func TestSplitBasic(t *testing.T) {
	got := Split("Hello world. This is fine. Done!", "en")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), texts(got))
	}
	if got[0].Text != "Hello world." {
		t.Errorf("unexpected first sentence: %q", got[0].Text)
	}
	for i, s := range got {
		if s.Index != i {
			t.Errorf("sentence %d has index %d", i, s.Index)
		}
	}
}

func TestSplitAbbreviations(t *testing.T) {
	got := Split("Dr. Smith met Mr. Jones. They spoke briefly.", "en")
	if len(got) != 2 {
		t.Fatalf("abbreviations must not split: got %d: %v", len(got), texts(got))
	}
}

func TestSplitInitials(t *testing.T) {
	got := Split("J. K. Rowling wrote it. Everyone read it.", "en")
	if len(got) != 2 {
		t.Fatalf("initials must not split: got %d: %v", len(got), texts(got))
	}
}

func TestSplitDecimalsAndVersions(t *testing.T) {
	got := Split("The value is 3.14 today. Version 2.4.1 shipped. Done.", "en")
	if len(got) != 3 {
		t.Fatalf("decimals must not split: got %d: %v", len(got), texts(got))
	}
}

func TestSplitRequiresSentenceOpener(t *testing.T) {
	// Lowercase after a terminator does not open a sentence.
	got := Split("He arrived at 5 p.m. and left at once. Then silence.", "en")
	if len(got) != 2 {
		t.Fatalf("got %d: %v", len(got), texts(got))
	}
}

func TestSplitQuotedSpans(t *testing.T) {
	got := Split(`She said "Stop. Now." and walked away. Nobody followed.`, "en")
	if len(got) != 2 {
		t.Fatalf("terminators inside quotes must not split: got %d: %v", len(got), texts(got))
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split("   \n\t ", "en"); got != nil {
		t.Errorf("whitespace-only input should give no sentences, got %v", texts(got))
	}
}

func TestSplitPlaceholderZone(t *testing.T) {
	// A placeholder token containing no terminator is atomic anyway; one with
	// markers around a dotted region must not split.
	text := "Before \x1aU0001\x1a after. Next sentence."
	got := Split(text, "en")
	if len(got) != 2 {
		t.Fatalf("got %d: %v", len(got), texts(got))
	}
}

func TestRepairMergesLowercaseStart(t *testing.T) {
	got := Repair([]string{"He went home.", "and slept.", "Morning came."})
	if len(got) != 2 {
		t.Fatalf("expected merge, got %v", got)
	}
	if !strings.Contains(got[0], "and slept.") {
		t.Errorf("lowercase fragment should merge into predecessor: %v", got)
	}
}

func TestRepairMergesShortUnterminated(t *testing.T) {
	got := Repair([]string{"The plan was ready.", "Almost done", "Final step followed."})
	if len(got) != 2 {
		t.Fatalf("expected merge of short unterminated fragment, got %v", got)
	}
}

func TestRepairDropsEmpty(t *testing.T) {
	got := Repair([]string{"One.", "  ", "Two again now."})
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}
