package main

import (
	"fmt"
	"log/slog"

	"github.com/xGihyun/wordsample/internal/config"
	"github.com/xGihyun/wordsample/internal/wordlist"
)

// getWords loads the dictionary named by cfg, keeps the words that pass its filter and
// returns a random sample of cfg.Count of them.
func getWords(cfg config.Config) ([]string, error) {
	candidates, err := wordlist.Load(cfg.Dict, wordlist.LoadOptions{SkipHeader: cfg.SkipHeader})
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	slog.Debug("loaded word list", slog.String("path", cfg.Dict), slog.Int("candidates", len(candidates)))

	matches := cfg.Filter().Apply(candidates)
	slog.Debug("filtered word list",
		slog.String("alphabet", cfg.Alphabet),
		slog.String("required", cfg.Required),
		slog.Int("matches", len(matches)),
	)
	if len(matches) == 0 {
		slog.Info("no words matched", slog.String("path", cfg.Dict))
	}

	return cfg.Sampler().Sample(matches, cfg.Count), nil
}
