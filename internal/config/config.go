package config

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"regexlab/internal/regexlib"
)

// Config configures the regexlab command.
type Config struct {
	// EndMarker is the single symbol appended for the direct DFA construction.
	EndMarker string `yaml:"end_marker"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`

	// OutputDir receives one DOT file per rendered automaton.
	OutputDir string `yaml:"output_dir"`

	// Render lists the automata to export: nfa, dfa, min, direct.
	Render []string `yaml:"render"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		EndMarker: string(regexlib.DefaultEndMarker),
		LogLevel:  "info",
		OutputDir: ".",
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if utf8.RuneCountInString(c.EndMarker) != 1 {
		return errors.Errorf("end_marker must be a single symbol, got %q", c.EndMarker)
	}
	switch m := c.Marker(); m {
	case regexlib.Epsilon, '|', '.', '*', '+', '?', '(', ')':
		return errors.Errorf("end_marker %q is an operator", string(m))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	for _, r := range c.Render {
		if !isEngine(r) {
			return errors.Errorf("render: unknown automaton %q", r)
		}
	}
	return nil
}

// Marker returns EndMarker as a rune.
func (c Config) Marker() rune {
	r, _ := utf8.DecodeRuneInString(c.EndMarker)
	return r
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func isEngine(name string) bool {
	for _, e := range regexlib.Engines {
		if string(e) == name {
			return true
		}
	}
	return false
}
