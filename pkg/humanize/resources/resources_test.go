package resources

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prosekit/humanize/pkg/humanize/internalerr"
)

func TestGetEnglishBuiltins(t *testing.T) {
	Reset()
	en := Get("en")

	if !en.IsStopWord("the") {
		t.Error("'the' should be a stop word")
	}
	if !en.IsAbbreviation("dr") {
		t.Error("'dr' should be an abbreviation")
	}
	if len(en.SynonymsFor("utilize")) == 0 {
		t.Error("'utilize' should have synonyms")
	}
	if len(en.Fillers()) == 0 {
		t.Error("filler list should not be empty")
	}
	if len(en.Contractions()) == 0 {
		t.Error("contraction list should not be empty")
	}
}

func TestGetReturnsSameTable(t *testing.T) {
	Reset()
	a := Get("en")
	b := Get("en-US")
	c := Get("EN")
	if a != b || b != c {
		t.Error("language variants must share one table instance")
	}
}

func TestGetConcurrentFirstAccess(t *testing.T) {
	Reset()

	var wg sync.WaitGroup
	tables := make([]*Table, 16)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Get("en")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(tables); i++ {
		if tables[i] != tables[0] {
			t.Fatal("concurrent first access produced distinct tables")
		}
	}
}

func TestGetUnknownLanguage(t *testing.T) {
	Reset()
	table := Get("xx")
	if table.IsStopWord("the") {
		t.Error("unknown language should start empty")
	}
	if table.IsAbbreviation("dr") {
		t.Error("unknown language should start empty")
	}
}

func TestLoadOverlay(t *testing.T) {
	Reset()

	path := filepath.Join(t.TempDir(), "overlay.yaml")
	overlay := `
stop_words: [zorp]
abbreviations: [dept.]
synonyms:
  - canonical: fast
    variants: [speedy, rapid]
fillers:
  - phrase: "needless to say, "
    replacement: ""
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverlay("xx", path); err != nil {
		t.Fatal(err)
	}

	table := Get("xx")
	if !table.IsStopWord("zorp") {
		t.Error("overlay stop word missing")
	}
	if !table.IsAbbreviation("dept") {
		t.Error("overlay abbreviation missing (trailing dot should be stripped)")
	}
	syns := table.SynonymsFor("speedy")
	if len(syns) == 0 || syns[0] != "fast" {
		t.Errorf("overlay synonym missing: %v", syns)
	}
	if len(table.Fillers()) != 1 {
		t.Errorf("overlay filler missing: %v", table.Fillers())
	}
}

func TestLoadOverlayMissingFile(t *testing.T) {
	Reset()
	err := LoadOverlay("en", "/no/such/file.yaml")
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for missing overlay file, got %v", err)
	}
}

func TestLoadOverlayMalformedYAML(t *testing.T) {
	Reset()

	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte("stop_words: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := LoadOverlay("en", path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for malformed overlay, got %v", err)
	}
}
