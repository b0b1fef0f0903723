package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable bits of shoplist.
type Config struct {
	Theme     string
	Seed      []string
	PhotoName string
	PickerDir string
	LogFile   string
}

const (
	defaultConfigPath = "~/.config/shoplist/config.toml"
	defaultTheme      = "classic"
	defaultPhotoName  = "New photo"
	defaultPickerDir  = "~"
)

var defaultSeed = []string{"Bread"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:     defaultTheme,
		Seed:      append([]string(nil), defaultSeed...),
		PhotoName: defaultPhotoName,
		PickerDir: mustExpand(defaultPickerDir),
	}
}

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load parses the config at path (or the default path), falling back to
// defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme     string    `toml:"theme"`
		Seed      *[]string `toml:"seed"`
		PhotoName string    `toml:"photo_name"`
		PickerDir string    `toml:"picker_dir"`
		LogFile   string    `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.ToLower(strings.TrimSpace(raw.Theme)); theme != "" {
		cfg.Theme = theme
	}

	// An explicit empty list means "start empty"; a missing key keeps the default.
	if raw.Seed != nil {
		cfg.Seed = cfg.Seed[:0]
		for _, name := range *raw.Seed {
			if n := strings.TrimSpace(name); n != "" {
				cfg.Seed = append(cfg.Seed, n)
			}
		}
	}

	if name := strings.TrimSpace(raw.PhotoName); name != "" {
		cfg.PhotoName = name
	}
	if dir := strings.TrimSpace(raw.PickerDir); dir != "" {
		cfg.PickerDir = mustExpand(dir)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
