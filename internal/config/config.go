// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xGihyun/wordsample/internal/wordlist"
)

// Defaults used when nothing else is configured.
const (
	DefaultDict     = "german.dic"
	DefaultAlphabet = "asdfjklöeruiqwopghtzvncmyb"
	DefaultRequired = "yb"
)

// Environment variables read by FromEnv.
const (
	EnvDict     = "WORDSAMPLE_DICT"
	EnvAlphabet = "WORDSAMPLE_ALPHABET"
	EnvRequired = "WORDSAMPLE_REQUIRED"
	EnvCount    = "WORDSAMPLE_COUNT"
	EnvSeed     = "WORDSAMPLE_SEED"
)

// Config holds everything a run needs.
type Config struct {
	Dict     string `validate:"required"` // Path to the word list, relative to cwd
	Alphabet string `validate:"required"` // Characters a word may consist of
	Required string // Characters a word must contain
	Count    int    `validate:"gte=0"` // Number of words to print

	Seed *uint64 // Fixed RNG seed; nil means random

	SkipHeader bool // Treat the first row as a header
	Normalize  bool // NFC-normalise words before filtering
	FoldCase   bool // Lower-case words before filtering
	Unique     bool // Drop repeated words
	Verbose    bool // Debug logging on stderr
	Practice   bool // Start the typing drill instead of printing
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dict:      DefaultDict,
		Alphabet:  DefaultAlphabet,
		Required:  DefaultRequired,
		Count:     wordlist.DefaultSampleSize,
		Normalize: true,
	}
}

// FromEnv returns Default overlaid with any WORDSAMPLE_* variables that lookup finds.
// Pass os.LookupEnv in production.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvDict); ok && v != "" {
		cfg.Dict = v
	}
	if v, ok := lookup(EnvAlphabet); ok && v != "" {
		cfg.Alphabet = v
	}
	if v, ok := lookup(EnvRequired); ok {
		cfg.Required = v
	}
	if v, ok := lookup(EnvCount); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be an integer: %w", EnvCount, err)
		}
		cfg.Count = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be an unsigned integer: %w", EnvSeed, err)
		}
		cfg.Seed = &seed
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and that the required characters can occur in an
// allowed word at all.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed '%s'", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if missing := c.RequiredSet().Missing(c.AlphabetSet()); len(missing) > 0 {
		return fmt.Errorf("config error: required characters %q are not in the alphabet", string(missing))
	}

	return nil
}

// AlphabetSet returns the allowed characters as a set.
func (c *Config) AlphabetSet() wordlist.Alphabet {
	return wordlist.NewAlphabet(c.Alphabet)
}

// RequiredSet returns the required characters as a set.
func (c *Config) RequiredSet() wordlist.Alphabet {
	return wordlist.NewAlphabet(c.Required)
}

// Filter builds the word filter described by c.
func (c *Config) Filter() wordlist.Filter {
	return wordlist.Filter{
		Allowed:   c.AlphabetSet(),
		Required:  c.RequiredSet(),
		Normalize: c.Normalize,
		FoldCase:  c.FoldCase,
		Unique:    c.Unique,
	}
}

// Sampler builds the sampler described by c.
func (c *Config) Sampler() *wordlist.Sampler {
	if c.Seed != nil {
		return wordlist.NewSeededSampler(*c.Seed)
	}
	return wordlist.NewSampler()
}
