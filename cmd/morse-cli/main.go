package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/kumarlokesh/morse-decoder/internal/config"
	"github.com/kumarlokesh/morse-decoder/internal/decoder"
	"github.com/kumarlokesh/morse-decoder/internal/dictionary"
	"github.com/kumarlokesh/morse-decoder/internal/morse"
	"github.com/kumarlokesh/morse-decoder/internal/trie"
)

const version = "v0.1.0"

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("morse-cli", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	// Tokens such as "-..." must reach subcommands untouched.
	flags.SetInterspersed(false)

	configPath := flags.String("config", "", "Path to config file")
	flags.String("dict", "", "Path to the newline-delimited dictionary")
	flags.String("duplicates", "", "Duplicate encoding policy: first or last")
	flags.String("mask", "", "Placeholder for an unknown leading symbol")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (console or json)")
	help := flags.BoolP("help", "h", false, "Show help message")
	showVer := flags.Bool("version", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		showHelp(stderr)
		return 2
	}
	if *help {
		showHelp(stdout)
		return 0
	}
	if *showVer {
		fmt.Fprintf(stdout, "morse-cli %s\n", version)
		return 0
	}
	if flags.NArg() == 0 {
		showHelp(stderr)
		return 2
	}

	cfg, err := config.LoadConfig(*configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	app := &app{cfg: cfg, logger: cfg.NewLogger(stderr), out: stdout}

	subcommand, rest := flags.Arg(0), flags.Args()[1:]
	switch subcommand {
	case "encode":
		err = app.encode(rest)
	case "decode":
		err = app.decode(rest)
	case "partial":
		err = app.partial(rest)
	case "stats":
		err = app.stats()
	case "config":
		app.printConfig()
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", subcommand)
		showHelp(stderr)
		return 2
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	if err != nil {
		app.logger.Error().Err(err).Str("command", subcommand).Msg("Command failed")
		return 1
	}
	return 0
}

func showHelp(w io.Writer) {
	helpText := `Morse decoder CLI

Usage:
  morse-cli [flags] <command> [arguments]

Flags:
  --config string       Path to config file
  --dict string         Path to dictionary (default ./dictionary.txt)
  --duplicates string   Duplicate encoding policy: first or last
  --mask string         Placeholder for an unknown leading symbol (default x)
  --log-level string    Log level
  --log-format string   console or json
  --help                Show this help message
  --version             Show version information

Commands:
  encode <word>...      Encode words to morse
  decode <token>...     Decode fully specified tokens to a word
  partial <token>...    List dictionary words matching a masked query
  stats                 Show dictionary and trie statistics
  config                Show current configuration

Environment variables prefixed MORSE_ override config keys,
e.g. MORSE_DICTIONARY_PATH.
`
	fmt.Fprint(w, helpText)
}

type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	out    io.Writer
}

func (a *app) encode(words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: encode needs at least one word", errUsage)
	}
	norm := dictionary.NewNormalizer()
	for _, w := range words {
		w = norm.Normalize(w)
		seq, err := morse.EncodeWord(w)
		if err != nil {
			return fmt.Errorf("encode %q: %w", w, err)
		}
		fmt.Fprintf(a.out, "%s\t%s\n", w, morse.Join(seq))
	}
	return nil
}

func (a *app) decode(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("%w: decode needs at least one token", errUsage)
	}
	seq := make([]morse.Token, len(tokens))
	for i, t := range tokens {
		seq[i] = morse.Token(t)
	}
	word, err := morse.DecodeSequence(seq)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, word)
	return nil
}

func (a *app) partial(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("%w: partial needs at least one token", errUsage)
	}
	mask, err := a.cfg.MaskSymbol()
	if err != nil {
		return err
	}
	// Validate before paying for the dictionary load.
	q, err := decoder.ParseQuery(tokens, mask)
	if err != nil {
		return err
	}

	t, _, err := a.buildTrie()
	if err != nil {
		return err
	}
	d := decoder.New(t, decoder.WithLogger(a.logger), decoder.WithMask(mask))
	for _, w := range d.Candidates(q) {
		fmt.Fprintln(a.out, w)
	}
	return nil
}

func (a *app) stats() error {
	t, stats, err := a.buildTrie()
	if err != nil {
		return err
	}
	fingerprint, err := t.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "dictionary:  %s\n", a.cfg.Dictionary.Path)
	fmt.Fprintf(a.out, "lines:       %d\n", stats.Lines)
	fmt.Fprintf(a.out, "encoded:     %d\n", stats.Encoded)
	fmt.Fprintf(a.out, "skipped:     %d\n", stats.Skipped)
	fmt.Fprintf(a.out, "collisions:  %d\n", stats.Collisions)
	fmt.Fprintf(a.out, "words:       %d\n", t.Len())
	fmt.Fprintf(a.out, "nodes:       %d\n", t.NodeCount())
	fmt.Fprintf(a.out, "policy:      %s\n", t.Policy())
	fmt.Fprintf(a.out, "fingerprint: %s\n", fingerprint)
	return nil
}

func (a *app) printConfig() {
	fmt.Fprintln(a.out, "Current configuration:")
	fmt.Fprintf(a.out, "Dictionary: %s (duplicates: %s)\n", a.cfg.Dictionary.Path, a.cfg.Dictionary.Duplicates)
	fmt.Fprintf(a.out, "Mask: %s\n", a.cfg.Decoder.Mask)
	fmt.Fprintf(a.out, "Log: %s (%s)\n", a.cfg.Log.Level, a.cfg.Log.Format)
}

func (a *app) buildTrie() (*trie.Trie, dictionary.Stats, error) {
	policy, err := a.cfg.DuplicatePolicy()
	if err != nil {
		return nil, dictionary.Stats{}, err
	}
	words, err := dictionary.Load(a.cfg.Dictionary.Path)
	if err != nil {
		return nil, dictionary.Stats{}, err
	}
	t, stats := dictionary.Build(words,
		dictionary.WithLogger(a.logger),
		dictionary.WithDuplicatePolicy(policy),
	)
	return t, stats, nil
}
