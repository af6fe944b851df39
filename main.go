// Package main implements wordsample, which prints random dictionary words that can
// be typed with a restricted set of keys.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xGihyun/wordsample/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	dict        string
	alphabet    string
	required    string
	count       int
	seed        uint64
	skipHeader  bool
	foldCase    bool
	unique      bool
	noNormalize bool
	verbose     bool
	practice    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "wordsample",
		Short: "Print random dictionary words made of a restricted alphabet",
		Long: "wordsample reads a space-delimited, |-quoted word list, keeps the words whose " +
			"letters all come from the allowed alphabet and that contain every required letter, " +
			"and prints a random sample of them on one line.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.dict, "dict", "d", def.Dict, "Path to the word list")
	cmd.Flags().StringVarP(&f.alphabet, "alphabet", "a", def.Alphabet, "Characters a word may consist of")
	cmd.Flags().StringVarP(&f.required, "required", "r", def.Required, "Characters a word must contain")
	cmd.Flags().IntVarP(&f.count, "count", "n", def.Count, "Number of words to print")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed the shuffle for reproducible output")
	cmd.Flags().BoolVar(&f.skipHeader, "skip-header", false, "Ignore the first row of the word list")
	cmd.Flags().BoolVar(&f.foldCase, "fold-case", false, "Lower-case words before filtering")
	cmd.Flags().BoolVar(&f.unique, "unique", false, "Drop repeated words")
	cmd.Flags().BoolVar(&f.noNormalize, "no-normalize", false, "Do not NFC-normalise words before filtering")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log progress to stderr")
	cmd.Flags().BoolVarP(&f.practice, "practice", "p", false, "Type the sampled words in an interactive drill")

	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	// Load .env file if it exists. Variables already in the environment win.
	_ = godotenv.Load()

	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogger(cmd.ErrOrStderr(), cfg.Verbose)

	words, err := getWords(cfg)
	if err != nil {
		return err
	}

	if cfg.Practice && isTTY(os.Stdout) {
		p := tea.NewProgram(newPracticeModel(words))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run practice drill: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " "))
	return err
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("dict") {
		cfg.Dict = f.dict
	}
	if changed("alphabet") {
		cfg.Alphabet = f.alphabet
	}
	if changed("required") {
		cfg.Required = f.required
	}
	if changed("count") {
		cfg.Count = f.count
	}
	if changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if changed("skip-header") {
		cfg.SkipHeader = f.skipHeader
	}
	if changed("fold-case") {
		cfg.FoldCase = f.foldCase
	}
	if changed("unique") {
		cfg.Unique = f.unique
	}
	if changed("no-normalize") {
		cfg.Normalize = !f.noNormalize
	}
	cfg.Verbose = f.verbose
	cfg.Practice = f.practice
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
