package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-defender/internal/audio"
	"github.com/vovakirdan/nebula-defender/internal/config"
	"github.com/vovakirdan/nebula-defender/internal/engine"
	"github.com/vovakirdan/nebula-defender/internal/settings"
	"github.com/vovakirdan/nebula-defender/internal/storage"
)

// localSession holds everything a local game needs.
type localSession struct {
	engine   *engine.Engine
	settings *settings.Store
	store    *storage.Store
	audio    *audio.Player
}

// openLocalSession loads the tuning, opens the stores and the speaker, and
// builds the engine. Missing storage or audio degrades to memory-only play.
func openLocalSession(logger *log.Logger) (*localSession, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadPreset(flagConfig, flagDifficulty)
	if err != nil {
		return nil, err
	}

	s := &localSession{}

	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		s.store = nil
	}

	s.settings, err = settings.Open(settings.AppName)
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
		s.settings = settings.NewStore(nil)
	}
	prefs, err := s.settings.Load()
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	s.audio = audio.NewPlayer(0.8)
	if err := s.audio.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := engine.Options{
		Config:   cfg,
		Seed:     seed,
		Audio:    s.audio,
		Settings: &prefs,
		Logger:   logger,
	}
	if s.store != nil {
		keeper := storage.NewKeeper(s.store, string(preset), logger)
		opts.Scores = keeper
		opts.Runs = keeper
	}
	s.engine = engine.New(opts)

	logger.Info("session ready", "difficulty", preset, "seed", seed, "persistent", s.settings.Persistent())
	return s, nil
}

func (s *localSession) Close() {
	s.audio.Close()
	if s.store != nil {
		s.store.Close()
	}
}
