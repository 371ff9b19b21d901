package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/app"
	"github.com/abhisek/wisdomquest/internal/config"
	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/llm"
	"github.com/abhisek/wisdomquest/internal/logger"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/session"
	"github.com/abhisek/wisdomquest/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	path, err := logPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	log, closeLog, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Path:   path,
	})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	kv, closeKV, err := openProgressKV(ctx, cfg, st)
	if err != nil {
		return fmt.Errorf("open progress storage: %w", err)
	}
	defer closeKV()

	progressStore := progress.NewStore(kv, log)
	snap := progressStore.Load(ctx)

	var lessons content.Generator
	offline := false
	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), log)
	if err != nil {
		offline = true
		if !errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		}
		log.Warn("running without an LLM provider", zap.Error(err))
		lessons = content.NewFallback(nil, log)
	} else {
		lessons = content.NewFallback(content.NewService(provider, cfg.Content, log), log)
	}

	ctrl := session.New(snap, progressStore, session.Options{
		Strict: cfg.Strict,
		Logger: log,
	})

	e := env.New(ctrl, lessons, log)
	e.Phonetics = cfg.UI.Phonetics

	skipWelcome, _ := cmd.Flags().GetBool("skip-welcome")
	log.Info("starting",
		zap.String("version", version),
		zap.String("storage", cfg.Storage.Backend),
		zap.Bool("offline", offline))

	return app.Run(app.Options{
		Env:         e,
		Offline:     offline,
		SkipWelcome: skipWelcome,
	})
}

// openProgressKV returns the key-value backend progress is saved in. The
// close function releases connections other than the SQLite store.
func openProgressKV(ctx context.Context, cfg *config.Config, st *store.Store) (progress.KV, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		kv, err := store.NewRedisKV(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	default:
		return st.KV(), func() error { return nil }, nil
	}
}
