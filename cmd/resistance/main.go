// Command resistance decodes a Morse sequence written without letter or word
// gaps into every sentence a dictionary can spell.
//
// The problem is read from --input (or stdin) in the puzzle format: the Morse
// line, the word count N, then N words. By default the number of distinct
// sentences is printed; --list prints the sentences themselves, sorted, one
// per line.
//
// Flags:
//
//	--config     path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--input      problem file (default: stdin); not with --generate or --word-list
//	--list       print the sentences instead of their count
//	--generate   write a synthetic problem to generator.input_path first and decode it
//	--word-list  decode --morse against a stored word list instead of the input dictionary
//	--morse      Morse sequence, required with --word-list
//	--version    print the version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/morse-resistance/internal/app"
	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/generator"
	"github.com/heartmarshall/morse-resistance/internal/input"
	"github.com/heartmarshall/morse-resistance/internal/service/decoder"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	inputPath  string
	list       bool
	generate   bool
	wordList   string
	morse      string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("resistance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	fs.StringVar(&o.inputPath, "input", "", "problem file (default: stdin)")
	fs.BoolVar(&o.list, "list", false, "print the sentences instead of their count")
	fs.BoolVar(&o.generate, "generate", false, "generate a synthetic problem and decode it")
	fs.StringVar(&o.wordList, "word-list", "", "decode --morse against a stored word list")
	fs.StringVar(&o.morse, "morse", "", "Morse sequence for --word-list")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.wordList != "" && o.generate {
		return o, errors.New("--word-list and --generate are mutually exclusive")
	}
	if o.inputPath != "" && (o.generate || o.wordList != "") {
		return o, errors.New("--input cannot be combined with --generate or --word-list")
	}
	if o.morse != "" && o.wordList == "" {
		return o, errors.New("--morse requires --word-list")
	}
	if o.wordList != "" && o.morse == "" {
		return o, errors.New("--word-list requires --morse")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.version {
		fmt.Fprintln(stdout, app.BuildVersion())
		return 0
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	if err := decode(ctx, opts, cfg, logger, stdin, stdout); err != nil {
		logger.Error("decode failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func decode(ctx context.Context, opts options, cfg *config.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	mode := domain.DecodeModeCount
	if opts.list {
		mode = domain.DecodeModeList
	}

	in := decoder.DecodeInput{Mode: mode}
	var store *app.Store

	switch {
	case opts.wordList != "":
		var err error
		store, err = app.OpenStore(ctx, cfg.Database, false, logger)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		if store == nil {
			return errors.New("--word-list needs database.dsn to be configured")
		}
		defer store.Close()

		in.Morse = opts.morse
		in.WordList = opts.wordList

	case opts.generate:
		sample, err := generator.New(cfg.Generator).Generate()
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if err := generator.WriteFiles(sample, cfg.Generator.InputPath, cfg.Generator.AnswerPath); err != nil {
			return err
		}
		logger.Info("problem generated",
			slog.String("input", cfg.Generator.InputPath),
			slog.String("answer", cfg.Generator.AnswerPath),
			slog.Int("morse_length", len(sample.Problem.Morse)),
			slog.Int("words", len(sample.Problem.Words)),
		)
		in.Morse, in.Words = sample.Problem.Morse, sample.Problem.Words

	default:
		p, err := readProblem(opts.inputPath, stdin)
		if err != nil {
			return err
		}
		in.Morse, in.Words = p.Morse, p.Words
	}

	res, err := app.NewDecoderService(logger, cfg.Decoder, store).Decode(ctx, in)
	if err != nil {
		return err
	}

	if mode == domain.DecodeModeCount {
		_, err = fmt.Fprintln(stdout, res.Count)
		return err
	}
	for _, msg := range res.Messages {
		if _, err := fmt.Fprintln(stdout, msg); err != nil {
			return err
		}
	}
	return nil
}

func readProblem(path string, stdin io.Reader) (domain.Problem, error) {
	if path == "" {
		return input.Read(stdin)
	}
	return input.ReadFile(path)
}
