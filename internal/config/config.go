// Package config resolves prettylog's rendering options.
//
// Options come from three layers, later layers winning: built-in defaults,
// an optional TOML file at ~/.config/prettylog/config.toml, and command-line
// flags. Every option has a default, so no configuration is required for
// correct operation; a missing config file is not an error. Invalid option
// values fail at startup, before any input line is read.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"prettylog/internal/classify"
	"prettylog/internal/render"
	"prettylog/internal/style"
)

// Config holds the resolved rendering options.
type Config struct {
	Color           style.Mode
	TimestampFormat render.TimestampFormat
	Lists           classify.Lists
}

// Flags carries raw command-line values; an empty string means "not set".
type Flags struct {
	Color           string
	TimestampFormat string
	TimestampKeys   string
	LevelKeys       string
	MessageKeys     string
}

const defaultConfigPath = "~/.config/prettylog/config.toml"

// fileConfig mirrors the TOML file shape.
type fileConfig struct {
	Color           string   `toml:"color"`
	TimestampFormat string   `toml:"timestamp_format"`
	TimestampKeys   []string `toml:"timestamp_keys"`
	LevelKeys       []string `toml:"level_keys"`
	MessageKeys     []string `toml:"message_keys"`
}

// Load resolves the configuration from defaults, the config file, and flags.
func Load(path string, flags Flags) (Config, error) {
	fc, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Color:           style.ModeAuto,
		TimestampFormat: render.TimestampAuto,
		Lists:           classify.DefaultLists(),
	}

	if v := firstNonEmpty(flags.Color, fc.Color); v != "" {
		mode, err := parseColor(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Color = mode
	}
	if v := firstNonEmpty(flags.TimestampFormat, fc.TimestampFormat); v != "" {
		format, err := parseTimestampFormat(v)
		if err != nil {
			return Config{}, err
		}
		cfg.TimestampFormat = format
	}
	if keys := keyList(flags.TimestampKeys, fc.TimestampKeys); len(keys) > 0 {
		cfg.Lists.Timestamp = keys
	}
	if keys := keyList(flags.LevelKeys, fc.LevelKeys); len(keys) > 0 {
		cfg.Lists.Level = keys
	}
	if keys := keyList(flags.MessageKeys, fc.MessageKeys); len(keys) > 0 {
		cfg.Lists.Message = keys
	}
	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return fileConfig{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("open config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(bytes, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

func parseColor(v string) (style.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "always":
		return style.ModeOn, nil
	case "off", "never":
		return style.ModeOff, nil
	case "auto":
		return style.ModeAuto, nil
	}
	return 0, fmt.Errorf("invalid color value %q: want on, off, or auto", v)
}

func parseTimestampFormat(v string) (render.TimestampFormat, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "auto":
		return render.TimestampAuto, nil
	case "seconds":
		return render.TimestampSeconds, nil
	case "millis":
		return render.TimestampMillis, nil
	case "raw":
		return render.TimestampRaw, nil
	}
	return 0, fmt.Errorf("invalid timestamp-format value %q: want auto, seconds, millis, or raw", v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// keyList prefers the flag's comma-separated list over the file's.
func keyList(flagValue string, fileValue []string) []string {
	if strings.TrimSpace(flagValue) != "" {
		return splitKeys(flagValue)
	}
	keys := make([]string, 0, len(fileValue))
	for _, k := range fileValue {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func splitKeys(v string) []string {
	parts := strings.Split(v, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
