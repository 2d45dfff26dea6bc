package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the TOML file layout.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Board   BoardConfig   `toml:"board"`
	Form    FormConfig    `toml:"form"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

type DataConfig struct {
	SeedPath string `toml:"seed_path"`
}

type BoardConfig struct {
	IDStrategy string `toml:"id_strategy"` // random | counter
}

type FormConfig struct {
	ClearDraftOnCancel bool `toml:"clear_draft_on_cancel"`
	ScrollDelayMS      int  `toml:"scroll_delay_ms"`
}

type UIConfig struct {
	Theme string `toml:"theme"` // classic | neon | mono
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

var (
	idStrategies = []string{"random", "counter"}
	themes       = []string{"classic", "neon", "mono"}
	levels       = []string{"debug", "info", "warn", "error", "fatal"}
)

// Default returns the built-in configuration. seedPath may be empty, which
// means the built-in cards.
func Default(seedPath string) Config {
	return Config{
		Data:    DataConfig{SeedPath: seedPath},
		Board:   BoardConfig{IDStrategy: "random"},
		Form:    FormConfig{ClearDraftOnCancel: false, ScrollDelayMS: 50},
		UI:      UIConfig{Theme: "classic"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load overlays the file at path on defaults. A missing or empty file
// yields defaults unchanged.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	if !slices.Contains(idStrategies, strings.ToLower(strings.TrimSpace(c.Board.IDStrategy))) {
		return fmt.Errorf("invalid board.id_strategy: %q", c.Board.IDStrategy)
	}
	if !slices.Contains(themes, strings.ToLower(strings.TrimSpace(c.UI.Theme))) {
		return fmt.Errorf("invalid ui.theme: %q", c.UI.Theme)
	}
	if !slices.Contains(levels, strings.ToLower(strings.TrimSpace(c.Logging.Level))) {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Form.ScrollDelayMS < 0 {
		return errors.New("form.scroll_delay_ms must be >= 0")
	}
	return nil
}

// ScrollDelay is the form scroll-into-view delay.
func (c Config) ScrollDelay() time.Duration {
	return time.Duration(c.Form.ScrollDelayMS) * time.Millisecond
}

// EnsureConfigDir creates the directory holding path.
func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Write encodes c as TOML at path.
func Write(path string, c Config) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
