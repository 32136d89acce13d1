package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/gemlink/internal/config"
	"github.com/vovakirdan/gemlink/internal/core"
)

// loadConfig resolves the game config: file, then preset, then .env and
// GEMLINK_* variables, then the --theme flag.
func loadConfig() (config.GemLinkConfig, error) {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return config.GemLinkConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GemLinkConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return config.GemLinkConfig{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.GemLinkConfig{}, err
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if err := cfg.RegisterThemes(); err != nil {
		return config.GemLinkConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Interactive sessions own the terminal,
// so without --log-file they discard logs; other commands log to stderr.
// The returned close func releases the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemlink",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
