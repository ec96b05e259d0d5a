package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.Config, config.Loaded, error) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, loaded, err
	}

	cfg := loaded.Config
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, loaded, err
	}
	return cfg, loaded, nil
}

// newLogger builds the process logger. fallback is used when no log file is
// configured. The returned closer releases the log file, if any.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if mkErr := os.MkdirAll(filepath.Dir(cfg.File), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closer, nil
}

// reportSkipped logs config files that were found but not used.
func reportSkipped(logger *log.Logger, loaded config.Loaded) {
	for _, err := range loaded.Skip {
		logger.Warn("ignoring config file", "error", err)
	}
	logger.Debug("config loaded", "source", loaded.Source)
}

// newSession seeds a session from the config, using the clock when the seed is 0.
// The seed is logged so a game can be replayed with --seed.
func newSession(cfg config.Config, logger *log.Logger) *t2048.Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting game", "seed", seed)
	return t2048.NewSession(rand.New(rand.NewSource(seed)))
}

// runtimeConfig reads the terminal size, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
