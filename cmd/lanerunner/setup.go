package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// loadConfig reads the runner config and applies the --difficulty preset.
func loadConfig() (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.RunnerConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, preset, nil
}

// loadRules loads, validates and compiles the runner config.
func loadRules() (*runner.Rules, config.RunnerConfig, config.DifficultyPreset, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return nil, cfg, preset, err
	}
	rules, err := runner.Compile(cfg)
	if err != nil {
		return nil, cfg, preset, err
	}
	return rules, cfg, preset, nil
}

// newLogger builds the command logger. The play command logs to a file
// because the terminal belongs to the game.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
