package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
)

// config is the file-backed configuration. Environment variables override
// the file, flags override both.
type config struct {
	IncludePaths []string `toml:"include_paths"`
	LogLevel     string   `toml:"log_level"`
	Color        string   `toml:"color"`
	Hexdump      bool     `toml:"hexdump"`
}

func defaultConfig() *config {
	return &config{LogLevel: "info", Color: "auto"}
}

// defaultConfigPath honors XDG_CONFIG_HOME and falls back to ~/.config.
func defaultConfigPath() string {
	if x := env.Str("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "sparkasm", "sparkasm.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sparkasm", "sparkasm.toml")
}

// loadConfig reads the TOML file and applies the SPARKASM_* overrides. A
// missing file is fine unless the path was given explicitly.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		contents, err := os.ReadFile(path)
		switch {
		case err == nil:
			if _, err := toml.Decode(string(contents), cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing %s", path)
			}
		case explicit || !os.IsNotExist(err):
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *config) {
	if v := env.Str("SPARKASM_INCLUDE_PATH"); v != "" {
		cfg.IncludePaths = filepath.SplitList(v)
	}
	cfg.LogLevel = env.Str("SPARKASM_LOG_LEVEL", cfg.LogLevel)
	cfg.Color = env.Str("SPARKASM_COLOR", cfg.Color)
	if v := env.Str("SPARKASM_HEXDUMP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Hexdump = b
		}
	}
}
