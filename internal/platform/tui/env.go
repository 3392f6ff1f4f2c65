package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/session"
	"github.com/vovakirdan/knight-run/internal/sprite"
	"github.com/vovakirdan/knight-run/internal/storage"
)

// Env is what every session of a process shares: the configuration, the
// sprite catalog, the store and the logger.
type Env struct {
	Config  config.GameConfig
	Sprites *sprite.Catalog
	Store   *storage.Store // nil runs without persistence
	Logger  *log.Logger
}

// NewEnv builds the sprite catalog once for all sessions.
func NewEnv(cfg config.GameConfig, store *storage.Store, logger *log.Logger) (*Env, error) {
	sprites, err := sprite.FromConfig(cfg.Sprites)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if err := sprites.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Env{Config: cfg, Sprites: sprites, Store: store, Logger: logger}, nil
}

// NewSession creates a session for profile. When the profile cannot be
// loaded the session continues in memory.
func (e *Env) NewSession(profile string, rt core.RuntimeConfig) (*session.Session, error) {
	if profile == "" {
		profile = storage.DefaultProfile
	}
	logger := e.Logger.With("profile", profile)
	deps := session.Deps{
		Config:  e.Config,
		Runtime: rt,
		Sprites: e.Sprites,
		Logger:  logger,
	}

	if e.Store != nil {
		prefs, err := e.Store.Prefs(profile)
		if err != nil {
			logger.Warn("could not load profile, continuing without storage", "err", err)
		} else {
			deps.Prefs = prefs
			deps.Runs = e.Store.Recorder(profile)
		}
	}

	return session.New(deps)
}
