package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/platform/tui"
	"github.com/vovakirdan/knight-run/internal/storage"
)

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "knight",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.knight/knight.log for appending. The TUI owns the
// terminal, so interactive commands log there. Returns io.Discard on failure.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".knight")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "knight.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// loadConfig loads the game configuration and applies --difficulty.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(strings.ToLower(flagDifficulty))
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			return config.GameConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	return cfg, nil
}

// openStore opens the save database, or returns nil to continue without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		logger.Warn("continuing without storage", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// mustOpenStore opens the save database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// interactive holds what the terminal commands share.
type interactive struct {
	env     *tui.Env
	runtime core.RuntimeConfig
	closers []func()
}

// newInteractive loads the config, opens the store and the log file.
// Exits on a configuration error.
func newInteractive() *interactive {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, closeLog := openLogFile()
	logger := newLogger(w)
	in := &interactive{runtime: runtimeConfig(), closers: []func(){closeLog}}

	store := openStore(logger)
	if store != nil {
		in.closers = append(in.closers, func() { store.Close() })
	}

	env, err := tui.NewEnv(cfg, store, logger)
	if err != nil {
		in.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	in.env = env
	return in
}

// Close releases the store and the log file, newest first.
func (in *interactive) Close() {
	for i := len(in.closers) - 1; i >= 0; i-- {
		in.closers[i]()
	}
}
