package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/deepthibiotune-hash/moems-agent/internal/app"
	"github.com/deepthibiotune-hash/moems-agent/internal/config"
	"github.com/deepthibiotune-hash/moems-agent/internal/log"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setupApp loads configuration and assembles the application.
// Callers must Close() the returned App.
func setupApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "Error: GEMINI_API_KEY environment variable not set")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Please run:")
		fmt.Fprintln(os.Stderr, "  export GEMINI_API_KEY=your-api-key")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level})

	a, err := app.Setup(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setting up application: %w", err)
	}
	return a, nil
}
