// Command wordlist-import stores a word file (one word per line, '#' starts
// a comment) as a named word list that decodes can refer to.
//
// Flags:
//
//	--config   path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--name     name of the new word list (required)
//	--file     word file (default: stdin)
//	--migrate  apply pending database migrations first
//
// Requires database.dsn (or DATABASE_DSN) to be set.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/app"
	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/input"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	name := flag.String("name", "", "name of the new word list")
	file := flag.String("file", "", "word file (default: stdin)")
	migrate := flag.Bool("migrate", false, "apply pending database migrations first")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: wordlist-import --name=<list> [--file=words.txt] [--migrate]")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	words, err := readWords(*file)
	if err != nil {
		logger.Error("read words", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := app.OpenStore(ctx, cfg.Database, *migrate, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if store == nil {
		logger.Error("database.dsn is required")
		os.Exit(1)
	}
	defer store.Close()

	list, err := app.NewWordListService(logger, store).Create(ctx, *name, words)
	if err != nil {
		logger.Error("import word list", slog.String("name", *name), slog.String("error", err.Error()))
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Imported %d words as %q (%s).\n", list.WordCount, list.Name, list.ID)
}

func readWords(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open word file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return input.ReadWords(r)
}
