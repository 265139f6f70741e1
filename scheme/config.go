package scheme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the interactive shell.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	ResultPrefix       string `yaml:"result_prefix"`
	ErrorPrefix        string `yaml:"error_prefix"`
	HistoryFile        string `yaml:"history_file"`

	// StrictArity is copied to the global environment.
	StrictArity bool `yaml:"strict_arity"`

	// FatalParseErrors ends the session at the first malformed input.
	FatalParseErrors bool `yaml:"fatal_parse_errors"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:             "schemer> ",
		ContinuationPrompt: "     ... ",
		ResultPrefix:       " ==> ",
		ErrorPrefix:        "==> Error: ",
		FatalParseErrors:   true,
	}
}

// ConfigError aggregates config validation failures.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	return "config validation failed: " + strings.Join(e.Issues, "; ")
}

// LoadConfig reads a YAML config file.
// Settings missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	cfg, err := DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads YAML settings from r on top of DefaultConfig.
// An empty document yields the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg can drive a shell session.
func (cfg *Config) Validate() error {
	var errs ConfigError
	if cfg.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	if strings.ContainsAny(cfg.Prompt, "\n\r") {
		errs.Issues = append(errs.Issues, "prompt must be a single line")
	}
	if strings.ContainsAny(cfg.ContinuationPrompt, "\n\r") {
		errs.Issues = append(errs.Issues, "continuation_prompt must be a single line")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// NewEnv returns a standard environment set up according to cfg.
func (cfg *Config) NewEnv() *Environment {
	env := StandardEnv()
	env.StrictArity = cfg.StrictArity
	return env
}
