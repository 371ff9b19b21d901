package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/wisdomquest/internal/config"
	"github.com/abhisek/wisdomquest/internal/logger"
	"github.com/abhisek/wisdomquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wisdomquest",
	Short: "Quiz adventure for young learners",
	Long:  "WisdomQuest: a terminal quiz adventure where kids clear levels in four subjects and collect stars.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WISDOMQUEST_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: <data dir>/config.yaml)")
	rootCmd.Flags().Bool("skip-welcome", false, "Start on the subject screen")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := config.LoadOptions{}
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		opts.File = p
	} else if dir, err := store.DataDir(); err == nil {
		opts.Dirs = []string{dir, "."}
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag or db.path
// (highest priority), then WISDOMQUEST_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the SQLite store.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, s, nil
}

// logPath returns log.file, or the log file next to the database.
func logPath(cfg *config.Config) (string, error) {
	if cfg.Log.File != "" {
		return cfg.Log.File, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logger.FileName), nil
}
