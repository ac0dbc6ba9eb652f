// Copyright 2025 The EN-PL-lookup Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// config holds environment configuration.
type config struct {
	// DataDir is an additional dictionary directory.
	DataDir string `env:"DSL_DATA_DIR"`

	// LogLevel is one of: debug, info, warn, error.
	LogLevel string `env:"DSL_LOG_LEVEL" env-default:"info"`

	// LogFormat is "text" or "json".
	LogFormat string `env:"DSL_LOG_FORMAT" env-default:"text"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: reading environment: %w", ErrDSLUtil, err)
	}
	return &cfg, nil
}

// newLogger creates a *slog.Logger from the config and sets it as the
// default logger. Output is always os.Stderr so that it does not mix with
// command output.
func newLogger(cfg *config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
