// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/modal/internal/logger"
	"github.com/mark3labs/modal/internal/tui/icon"
	"github.com/mark3labs/modal/internal/tui/modal"
	"github.com/mark3labs/modal/internal/tui/theme"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MODAL"

// Config holds all configuration values for modal.
type Config struct {
	Theme     string `mapstructure:"theme" yaml:"theme"`
	Icons     string `mapstructure:"icons" yaml:"icons"`
	Width     int    `mapstructure:"width" yaml:"width"`
	Markdown  bool   `mapstructure:"markdown" yaml:"markdown"`
	ShowHints bool   `mapstructure:"show_hints" yaml:"show_hints"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
}

// keys lists every config key; each is bound to MODAL_<KEY>.
var keys = []string{"theme", "icons", "width", "markdown", "show_hints", "log_level", "log_file"}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Theme:     theme.DefaultName,
		Icons:     "unicode",
		Width:     modal.DefaultWidth,
		Markdown:  false,
		ShowHints: true,
		LogLevel:  "info",
		LogFile:   "",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
//
// flags may be nil. Flags are matched to keys by name with dashes mapped to
// underscores, so --show-hints sets show_hints.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("modal")

	def := Default()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("icons", def.Icons)
	v.SetDefault("width", def.Width)
	v.SetDefault("markdown", def.Markdown)
	v.SetDefault("show_hints", def.ShowHints)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool/int parsing
	for _, key := range keys {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if flags != nil {
		for _, key := range keys {
			f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding %s flag: %w", key, err)
			}
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	logger.Debug("config loaded: theme=%s icons=%s width=%d", cfg.Theme, cfg.Icons, cfg.Width)
	return &cfg, nil
}

// Validate checks that the theme, icon set and width are usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := theme.Get(c.Theme); err != nil {
		errs = append(errs, fmt.Errorf("theme: %w", err))
	}
	if _, err := icon.Lookup(c.Icons); err != nil {
		errs = append(errs, fmt.Errorf("icons: %w", err))
	}
	if c.Width < modal.MinWidth {
		errs = append(errs, fmt.Errorf("width %d is below the minimum of %d", c.Width, modal.MinWidth))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/modal/modal.yml or $XDG_CONFIG_HOME/modal/modal.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "modal", "modal.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "modal", "modal.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "modal.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
