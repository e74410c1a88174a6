package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	LogLevel     string
	SearchTerm   string
	SeedFile     string
	PrintMetrics bool
}

// loadConfig reads the environment, after merging an optional .env file from
// the working directory. Variables already set win over the file.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}

	printMetrics, err := strconv.ParseBool(getenv("DEMO_PRINT_METRICS", "false"))
	if err != nil {
		return config{}, fmt.Errorf("DEMO_PRINT_METRICS: %w", err)
	}

	return config{
		LogLevel:     getenv("LOG_LEVEL", "info"),
		SearchTerm:   getenv("DEMO_SEARCH_TERM", "pot"),
		SeedFile:     os.Getenv("DEMO_SEED_FILE"),
		PrintMetrics: printMetrics,
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
