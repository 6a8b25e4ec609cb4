package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk shape. Unset paths are omitted rather than
// written as empty strings, which would not load back.
type fileConfig struct {
	Platform string  `toml:"platform"`
	Strict   *bool   `toml:"strict,omitempty"`
	Base     string  `toml:"base,omitempty"`
	Log      fileLog `toml:"log"`
}

type fileLog struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file,omitempty"`
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	out := fileConfig{
		Platform: cfg.Platform,
		Strict:   cfg.Strict,
		Log:      fileLog{Verbosity: cfg.Log.Verbosity, File: cfg.LogFile()},
	}
	if !cfg.Base.Raw().IsZero() {
		out.Base = cfg.Base.String()
	}
	data, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return data, nil
}

// Save writes cfg to path, creating parent directories. An empty path
// selects the XDG config file.
func Save(cfg *Config, path string) (string, error) {
	if path == "" {
		p, err := xdg.ConfigFile(FileName)
		if err != nil {
			return "", fmt.Errorf("failed to resolve config location: %w", err)
		}
		path = p
	}

	data, err := Encode(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return path, nil
}

// WriteTemplate writes the commented starter file to path unless a file is
// already there.
func WriteTemplate(path string) (string, error) {
	if path == "" {
		p, err := xdg.ConfigFile(FileName)
		if err != nil {
			return "", fmt.Errorf("failed to resolve config location: %w", err)
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return "", fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return path, nil
}
