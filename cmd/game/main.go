package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tatianab/detective-quest/internal/config"
	"github.com/tatianab/detective-quest/internal/engine"
	"github.com/tatianab/detective-quest/internal/errors"
	"github.com/tatianab/detective-quest/internal/models"
)

var (
	cfg          *config.Config
	caseFlag     string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "detective-quest",
	Short: "Explore the mansion, collect clues and accuse the culprit",
	Long: `Detective Quest: walk the rooms of a mansion, collect the clues hidden in them and
sustain an accusation with at least the evidence the case requires.

Environment variables (also read from a .env file):
  ` + strings.Join(config.Variables(), "\n  "),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.LoadConfig(); err != nil {
			return err
		}
		if cmd.Flags().Changed("case") {
			cfg.CaseFile = caseFlag
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevelFlag
		}
		return nil
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&caseFlag, "case", "", "Case file to play (default: the built-in mansion)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.AddCommand(playCmd, simulateCmd, casesCmd)
}

// loadCase returns the configured case file or the built-in one.
func loadCase() (*models.Case, error) {
	if cfg.CaseFile == "" {
		return models.DefaultCase()
	}
	return models.LoadCase(cfg.CaseFile)
}

func newEngine(logger *slog.Logger) (*engine.Engine, error) {
	c, err := loadCase()
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewEngine(c, logger)
	if err != nil {
		return nil, err
	}
	return eng, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errors.Wrap(err, "detective-quest"))
		stop()
		os.Exit(1)
	}
}
