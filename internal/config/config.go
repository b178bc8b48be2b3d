package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Diagnostics
	LogLevel slog.Level

	// Content-stage passes. Both default to off so a plain invocation
	// only rewrites existing frontmatter values.
	ExtractHeaders bool
	DeriveTitles   bool
}

func Load() Config {
	return Config{
		LogLevel:       envLevel("MDBOOK_FRONTMATTER_LOG_LEVEL", slog.LevelInfo),
		ExtractHeaders: envBool("MDBOOK_FRONTMATTER_EXTRACT", false),
		DeriveTitles:   envBool("MDBOOK_FRONTMATTER_DERIVE_TITLE", false),
	}
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return fallback
}
