// Command humanize-cli runs the transformation pipeline over a single
// document from a file or stdin and prints the rewritten text. With -explain
// it also dumps every change record, skipped stage and the validator verdict.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/prosekit/humanize/pkg/humanize"
	"github.com/prosekit/humanize/pkg/humanize/history/sqlite"
	"github.com/prosekit/humanize/pkg/humanize/resources"
)

func main() {
	var (
		inPath      = flag.String("in", "", "Input file (default: stdin)")
		htmlInput   = flag.Bool("html", false, "Treat input as HTML and extract its text first")
		language    = flag.String("lang", "en", "Input language")
		profile     = flag.String("profile", "standard", "Profile: standard|web|academic|chat")
		intensity   = flag.Int("intensity", 50, "Intensity 0..100")
		seed        = flag.Int64("seed", 0, "Seed for reproducible runs")
		keywords    = flag.String("keep", "", "Comma-separated keywords to protect")
		brands      = flag.String("brands", "", "Comma-separated brand terms to protect")
		numbers     = flag.Bool("numbers", true, "Protect decimal and ID-like numbers")
		maxChange   = flag.Float64("max-change", 0, "Rollback when change ratio exceeds this (0 disables)")
		overlayPath = flag.String("resources", "", "YAML resource overlay file (optional)")
		historyPath = flag.String("history", "", "SQLite run-history database (optional)")
		explain     = flag.Bool("explain", false, "Print change records and verdict")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	text, err := readInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	if *htmlInput {
		text = extractText(text)
	}

	if *overlayPath != "" {
		if err := resources.LoadOverlay(*language, *overlayPath); err != nil {
			log.Fatal(err)
		}
	}

	cfg := humanize.Config{}
	if *historyPath != "" {
		store, err := sqlite.Open(ctx, *historyPath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		cfg.History = store
	}

	h := humanize.New(cfg)
	result, err := h.Humanize(ctx, text, humanize.Options{
		Language:  *language,
		Profile:   humanize.Profile(*profile),
		Intensity: *intensity,
		Seed:      *seed,
		Constraints: humanize.Constraints{
			KeepKeywords:   splitList(*keywords),
			MaxChangeRatio: *maxChange,
		},
		Preserve: humanize.Preserve{
			Numbers:    *numbers,
			BrandTerms: splitList(*brands),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Text)

	if *explain {
		fmt.Fprintf(os.Stderr, "\nrun %s  change_ratio=%.3f  similarity=%.3f  quality=%.3f\n",
			result.RunID, result.ChangeRatio(), result.Similarity(), result.QualityScore())
		if result.RolledBack {
			fmt.Fprintln(os.Stderr, "ROLLED BACK:", strings.Join(result.Verdict.Errors, "; "))
		}
		for _, w := range result.Verdict.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		for _, c := range result.Changes {
			if c.Original != "" || c.Replacement != "" {
				fmt.Fprintf(os.Stderr, "  [%s] %s: %q -> %q\n", c.Stage, c.Kind, c.Original, c.Replacement)
			} else {
				fmt.Fprintf(os.Stderr, "  [%s] %s: %s\n", c.Stage, c.Kind, c.Description)
			}
		}
		for _, t := range result.StageTimings {
			fmt.Fprintf(os.Stderr, "  %-14s %v\n", t.Stage, t.Elapsed)
		}
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// extractText parses HTML and returns its visible text.
func extractText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}
