package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tatianab/detective-quest/internal/errors"
	"github.com/tatianab/detective-quest/internal/logging"
	"github.com/tatianab/detective-quest/internal/narrator"
	"github.com/tatianab/detective-quest/internal/tui"
)

var logFileFlag string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive investigation",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&logFileFlag, "log-file", "", "File to write logs to (default: DETECTIVE_LOG_FILE)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = logFileFlag
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	f, err := tea.LogToFile(cfg.LogFile, "detective-quest")
	if err != nil {
		return errors.Wrap(err, "open log file", slog.String("path", cfg.LogFile))
	}
	defer func() { _ = f.Close() }()
	logger := logging.New(f, level)

	eng, err := newEngine(logger)
	if err != nil {
		logger.Error("could not prepare case", errors.SlogError(err))
		return err
	}

	nar, closeNarrator, err := narrator.New(cmd.Context(), cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Error("could not create narrator", errors.SlogError(err))
		return err
	}
	defer func() {
		if err := closeNarrator(); err != nil {
			logger.Warn("close narrator", errors.SlogError(err))
		}
	}()

	if err := tui.Run(eng, nar, logger); err != nil {
		logger.Error("ui stopped", errors.SlogError(err))
		return errors.Wrap(err, "run ui")
	}
	return nil
}
