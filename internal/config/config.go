// Package config loads type-inspector settings from a YAML file, a .env file
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given. It may be absent.
const DefaultFile = ".type-inspector.yaml"

// DefaultIndent is the hierarchy indentation width in spaces.
const DefaultIndent = 2

// Environment variables overriding file settings.
const (
	EnvDir     = "TYPE_INSPECTOR_DIR"
	EnvTags    = "TYPE_INSPECTOR_TAGS"     // comma-separated
	EnvShowAll = "TYPE_INSPECTOR_SHOW_ALL" // any strconv.ParseBool value
)

// Config holds the settings shared by every subcommand. CLI flags override
// its fields after loading.
type Config struct {
	Dir       string   `yaml:"dir"`        // working directory for package loading
	BuildTags []string `yaml:"build_tags"` // passed as -tags
	Tests     bool     `yaml:"tests"`      // load _test.go files too
	ShowAll   bool     `yaml:"show_all"`   // list unexported names
	Indent    int      `yaml:"indent"`     // spaces per hierarchy level
	Overrides bool     `yaml:"overrides"`  // print the overrides section
}

// Load reads the config file at path, or DefaultFile when path is empty,
// then applies .env and environment overrides. A missing DefaultFile yields
// the defaults; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		data = nil
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse parses YAML data into a Config with defaults applied. Empty data is
// a valid, default config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Indent <= 0 {
		cfg.Indent = DefaultIndent
	}
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if dir := getenv(EnvDir); dir != "" {
		cfg.Dir = dir
	}

	if tags := getenv(EnvTags); tags != "" {
		cfg.BuildTags = splitTags(tags)
	}

	if v := getenv(EnvShowAll); v != "" {
		showAll, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvShowAll, v, err)
		}

		cfg.ShowAll = showAll
	}

	return nil
}

func splitTags(s string) []string {
	var out []string

	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}

	return out
}

// SetTags replaces the build tags with the comma-separated list in s.
func (c *Config) SetTags(s string) {
	c.BuildTags = splitTags(s)
}

// BuildFlags returns the build system flags for the configured tags.
func (c *Config) BuildFlags() []string {
	if len(c.BuildTags) == 0 {
		return nil
	}

	return []string{"-tags=" + strings.Join(c.BuildTags, ",")}
}

// IndentUnit returns the hierarchy indentation string.
func (c *Config) IndentUnit() string {
	return strings.Repeat(" ", c.Indent)
}
