package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/cassis-finance/cassis/internal/classifier"
	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/config"
	"github.com/cassis-finance/cassis/internal/learning"
	"github.com/cassis-finance/cassis/internal/patterndb"
	"github.com/cassis-finance/cassis/internal/scoring"
	"github.com/cassis-finance/cassis/internal/storage"
)

// app bundles the wired components behind one Close.
type app struct {
	cfg        config.Config
	classifier *classifier.Classifier
	learning   *learning.Store
	patterns   *patterndb.DB
	store      *storage.SQLiteCorrectionStore
}

// buildApp wires the pattern database, scorer, learning store and classifier
// from the loaded configuration. The corrections database is optional: when
// it cannot be opened the engine still works, it just forgets corrections
// between runs.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("configuration is invalid", err)
	}

	db, err := loadPatternDB(cfg)
	if err != nil {
		return nil, common.NewUserError("could not load the pattern set", err)
	}

	learn := learning.NewStore()

	var store *storage.SQLiteCorrectionStore
	if cfg.DatabasePath != "" {
		store, err = storage.NewSQLiteCorrectionStore(ctx, cfg.DatabasePath)
		if err != nil {
			slog.Warn("Corrections database unavailable, learning is in-memory only",
				"path", cfg.DatabasePath, "error", err)
		} else {
			corrections, listErr := store.ListCorrections(ctx)
			if listErr != nil {
				slog.Warn("Failed to load past corrections", "error", listErr)
			} else {
				learn.Restore(corrections)
			}
			learn = learn.WithPersistence(store)
		}
	}

	c := classifier.NewWithConfig(db, scoring.NewScorer(cfg.Weights), classifier.Config{
		CacheTTL:              cfg.Cache.TTL,
		CacheSize:             cfg.Cache.MaxSize,
		DisableCache:          cfg.Cache.Disabled,
		FastPathStrength:      cfg.FastPathStrength,
		HighConfidence:        cfg.HighConfidence,
		ResearchMaxConcurrent: cfg.Research.MaxConcurrent,
		ResearchMinInterval:   cfg.Research.MinInterval,
		ResearchTimeout:       cfg.Research.Timeout,
	}).WithLearning(learn)

	return &app{cfg: cfg, classifier: c, learning: learn, patterns: db, store: store}, nil
}

func loadPatternDB(cfg config.Config) (*patterndb.DB, error) {
	if cfg.PatternFile == "" {
		return patterndb.Default(), nil
	}

	entries, err := patterndb.LoadYAMLFile(cfg.PatternFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern file %s: %w", cfg.PatternFile, err)
	}
	slog.Info("Loaded custom pattern set", "path", cfg.PatternFile, "patterns", len(entries))
	return patterndb.New(entries), nil
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			common.LogError(err, "Failed to close corrections database", common.Fields{"path": a.cfg.DatabasePath})
		}
	}
}
