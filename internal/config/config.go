package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the tradeplot CLI.
type Config struct {
	// Output document
	OutputPath string

	// Runtime settings. An empty PlotlyJSPath selects the embedded or
	// default bundle.
	Runtime      string
	PlotlyJSPath string
	CDNURL       string

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables and optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		slog.Debug("no .env file", "error", err)
	}

	cfg := &Config{
		OutputPath:   getEnvOrDefault("TRADEPLOT_OUTPUT", "interactive_trade_model.html"),
		Runtime:      getEnvOrDefault("TRADEPLOT_RUNTIME", "inline"),
		PlotlyJSPath: os.Getenv("TRADEPLOT_PLOTLY_JS"),
		CDNURL:       getEnvOrDefault("TRADEPLOT_PLOTLY_CDN_URL", "https://cdn.plot.ly/plotly-2.35.2.min.js"),
		LogLevel:     getEnvOrDefault("TRADEPLOT_LOG_LEVEL", "warn"),
		LogFile:      os.Getenv("TRADEPLOT_LOG_FILE"),
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
