// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/ninepaste/pkg/hotkey"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete application configuration
type Config struct {
	StartWithSystem   bool   `json:"start_with_system" yaml:"start_with_system" hcl:"start_with_system,optional"`
	StartMinimized    bool   `json:"start_minimized" yaml:"start_minimized" hcl:"start_minimized,optional"`
	ShowNotifications bool   `json:"show_notifications" yaml:"show_notifications" hcl:"show_notifications,optional"`
	PlaySounds        bool   `json:"play_sounds" yaml:"play_sounds" hcl:"play_sounds,optional"`
	PollIntervalMs    int    `json:"poll_interval_ms" yaml:"poll_interval_ms" hcl:"poll_interval_ms,optional"`
	AutoTransform     bool   `json:"auto_transform" yaml:"auto_transform" hcl:"auto_transform,optional"`
	ToggleHotkey      string `json:"toggle_hotkey" yaml:"toggle_hotkey" hcl:"toggle_hotkey,optional"`
	QuickMenuHotkey   string `json:"quick_menu_hotkey" yaml:"quick_menu_hotkey" hcl:"quick_menu_hotkey,optional"`
	DashboardHotkey   string `json:"dashboard_hotkey" yaml:"dashboard_hotkey" hcl:"dashboard_hotkey,optional"`
	Theme             string `json:"theme" yaml:"theme" hcl:"theme,optional"`
	KeepHistory       bool   `json:"keep_history" yaml:"keep_history" hcl:"keep_history,optional"`
	MaxHistorySize    int    `json:"max_history_size" yaml:"max_history_size" hcl:"max_history_size,optional"`
	IPCPort           int    `json:"ipc_port" yaml:"ipc_port" hcl:"ipc_port,optional"`

	// ActiveRecipeID mirrors the active recipe for display purposes. The
	// recipe registry stays authoritative.
	ActiveRecipeID string `json:"active_recipe_id,omitempty" yaml:"active_recipe_id,omitempty" hcl:"active_recipe_id,optional"`
}

// 🏭 Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		StartWithSystem:   false,
		StartMinimized:    true,
		ShowNotifications: true,
		PlaySounds:        false,
		PollIntervalMs:    250,
		AutoTransform:     true,
		ToggleHotkey:      "Ctrl+Shift+T",
		QuickMenuHotkey:   "Ctrl+Shift+V",
		DashboardHotkey:   "Ctrl+Shift+D",
		Theme:             "system",
		KeepHistory:       true,
		MaxHistorySize:    100,
		IPCPort:           9549,
	}
}

// DefaultPath returns <user config dir>/ninepaste/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Errorf("finding user config dir: %w", err)
	}
	return filepath.Join(dir, "ninepaste", "config.yaml"), nil
}

// 🎯 Load loads the configuration from a file. A missing file yields the
// defaults, not an error.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (cfg *Config) Save(ctx context.Context, path string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("saving configuration")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Errorf("writing config file: %w", err)
	}
	return nil
}

// 🔍 Validate checks the configuration and fills defaulted fields
func (cfg *Config) Validate() error {
	if cfg.PollIntervalMs <= 0 {
		cfg.PollIntervalMs = 250
	}
	if cfg.MaxHistorySize < 0 {
		return errors.Errorf("max_history_size must not be negative")
	}
	if cfg.IPCPort == 0 {
		cfg.IPCPort = 9549
	}
	if cfg.IPCPort < 0 || cfg.IPCPort > 65535 {
		return errors.Errorf("ipc_port out of range: %d", cfg.IPCPort)
	}

	if cfg.Theme == "" {
		cfg.Theme = "system"
	}
	switch cfg.Theme {
	case "dark", "light", "system":
	default:
		return errors.Errorf("unknown theme %q", cfg.Theme)
	}

	for name, chord := range map[string]string{
		"toggle_hotkey":     cfg.ToggleHotkey,
		"quick_menu_hotkey": cfg.QuickMenuHotkey,
		"dashboard_hotkey":  cfg.DashboardHotkey,
	} {
		if err := hotkey.Validate(chord); err != nil {
			return errors.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// PollInterval returns the poll interval as a duration.
func (cfg *Config) PollInterval() time.Duration {
	return time.Duration(cfg.PollIntervalMs) * time.Millisecond
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("poll=%dms auto_transform=%t history=%t(max %d)",
		cfg.PollIntervalMs, cfg.AutoTransform, cfg.KeepHistory, cfg.MaxHistorySize)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
