package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/listbox/internal/scroll"
)

// Front ends.
const (
	FrontendANSI = "ansi"
	FrontendTea  = "tea"
)

// Input modes for the ansi front end.
const (
	InputBlocking = "blocking"
	InputPoll     = "poll"
)

// Colors names the four list box colours by name or code.
type Colors struct {
	Fg         string `yaml:"fg"`
	Bg         string `yaml:"bg"`
	SelectedFg string `yaml:"selected_fg"`
	SelectedBg string `yaml:"selected_bg"`
}

// Config holds CLI configuration stored at ~/.listbox/config.
type Config struct {
	Height       int           `yaml:"height"`
	OriginX      int           `yaml:"origin_x"`
	OriginY      int           `yaml:"origin_y"`
	Colors       Colors        `yaml:"colors"`
	Frontend     string        `yaml:"frontend"`
	Input        string        `yaml:"input"`
	PollInterval time.Duration `yaml:"poll_interval"`
	VimKeys      bool          `yaml:"vim_keys"`
	ItemsFile    string        `yaml:"items_file,omitempty"`
	LogFile      string        `yaml:"log_file,omitempty"`
	LogLevel     string        `yaml:"log_level"`
}

// Default returns the built-in configuration: three visible rows at (10, 8)
// in white on black with a bright white on blue highlight.
func Default() *Config {
	return &Config{
		Height:  3,
		OriginX: 10,
		OriginY: 8,
		Colors: Colors{
			Fg:         "white",
			Bg:         "black",
			SelectedFg: "bright-white",
			SelectedBg: "blue",
		},
		Frontend:     FrontendANSI,
		Input:        InputBlocking,
		PollInterval: 200 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".listbox", "config")
}

// Load reads and parses the config file. A missing file yields Default;
// a file readable by others is rejected.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the list box cannot run with.
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendANSI, FrontendTea:
	default:
		return fmt.Errorf("config frontend %q: want %s or %s", c.Frontend, FrontendANSI, FrontendTea)
	}
	switch c.Input {
	case InputBlocking, InputPoll:
	default:
		return fmt.Errorf("config input %q: want %s or %s", c.Input, InputBlocking, InputPoll)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("config poll_interval %s is negative", c.PollInterval)
	}
	if c.OriginX < 1 || c.OriginY < 1 {
		return fmt.Errorf("config origin (%d, %d) must be at least (1, 1)", c.OriginX, c.OriginY)
	}
	if _, err := c.ScrollColors(); err != nil {
		return err
	}
	return nil
}

// ScrollColors parses the configured colour names.
func (c *Config) ScrollColors() (scroll.Colors, error) {
	var out scroll.Colors
	fields := []struct {
		name  string
		value string
		dst   *scroll.Color
	}{
		{"fg", c.Colors.Fg, &out.Normal.Fg},
		{"bg", c.Colors.Bg, &out.Normal.Bg},
		{"selected_fg", c.Colors.SelectedFg, &out.Selected.Fg},
		{"selected_bg", c.Colors.SelectedBg, &out.Selected.Bg},
	}
	for _, f := range fields {
		color, err := scroll.ParseColor(f.value)
		if err != nil {
			return scroll.Colors{}, fmt.Errorf("config colors.%s: %w", f.name, err)
		}
		*f.dst = color
	}
	return out, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
