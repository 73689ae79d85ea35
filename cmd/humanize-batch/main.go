// Command humanize-batch runs the pipeline over many documents with a
// bounded worker pool. Input is either one document per file (positional
// arguments) or one document per line with -lines. Output order always
// matches input order.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/prosekit/humanize/pkg/humanize"
	"github.com/prosekit/humanize/pkg/humanize/history/sqlite"
)

func main() {
	var (
		lines       = flag.Bool("lines", false, "Read documents from stdin, one per line")
		language    = flag.String("lang", "en", "Input language")
		profile     = flag.String("profile", "standard", "Profile: standard|web|academic|chat")
		intensity   = flag.Int("intensity", 50, "Intensity 0..100")
		seed        = flag.Int64("seed", 0, "Base seed; item i runs with seed+i")
		workers     = flag.Int("workers", 4, "Worker pool size (1 = sequential)")
		historyPath = flag.String("history", "", "SQLite run-history database (optional)")
		quiet       = flag.Bool("q", false, "Suppress progress output")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	items, err := collectItems(*lines, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if len(items) == 0 {
		log.Fatal("no input documents")
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
	opts := humanize.Options{
		Language:  *language,
		Profile:   humanize.Profile(*profile),
		Intensity: *intensity,
		Seed:      *seed,
	}

	var progress humanize.ProgressFunc
	if !*quiet {
		progress = func(completed, total int) {
			fmt.Fprintf(os.Stderr, "\r%d/%d", completed, total)
		}
	}

	results, err := h.HumanizeBatch(ctx, items, opts, *workers, progress)
	if err != nil {
		log.Fatal(err)
	}
	if !*quiet {
		fmt.Fprintln(os.Stderr)
	}

	for i, res := range results {
		if len(items) > 1 && !*lines {
			fmt.Printf("--- %s\n", flag.Arg(i))
		}
		fmt.Println(res.Text)
	}
}

func collectItems(fromLines bool, paths []string) ([]string, error) {
	if fromLines {
		var items []string
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			items = append(items, scanner.Text())
		}
		return items, scanner.Err()
	}

	var items []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		items = append(items, string(data))
	}
	return items, nil
}
