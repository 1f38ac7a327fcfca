package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"movierental/internal/app"
	"movierental/internal/config"
	"movierental/internal/ui"
)

var (
	configDir string
	repoType  string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "movierental",
	Short: "Manage clients, movies and rentals",
	Long: `movierental is an interactive console for a small movie rental store.
Records are kept in memory, in text files, in binary files or in BadgerDB,
and every change can be undone and redone for the rest of the session.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configDir, "config", "./configs", "Directory holding config.yaml")
	rootCmd.Flags().StringVar(&repoType, "repo-type", "", "Storage backend: inmemory, file, binary or kv")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if repoType != "" {
		if cfg, err = cfg.WithRepoType(repoType); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// --- Logger Setup ---
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"repo_type": cfg.RepoType,
		"populate":  cfg.Populate,
	}).Info("Configuration loaded successfully")

	// --- Session ---
	session, err := app.Open(cfg, afero.NewOsFs(), log)
	if err != nil {
		log.WithError(err).Error("Failed to open session")
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.WithError(err).Error("Error closing session")
		}
	}()

	// --- Menu Loop ---
	menu := ui.NewMenu(session, cmd.InOrStdin(), cmd.OutOrStdout(), log)
	if err := menu.Run(); err != nil {
		log.WithError(err).Error("Menu stopped")
		return err
	}
	log.Info("Goodbye.")
	return nil
}

// newLogger builds the process logger. Logs go to stderr so they do not mix
// with the menu on stdout.
func newLogger(cfg config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	switch cfg.LogFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	return log, nil
}
