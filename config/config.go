/*
File    : minilang/config/config.go
Package config loads an optional YAML config file supplying a default
log level and REPL prompt string, read once at startup after the flags
are parsed (its path comes from the --config flag). A --loglevel flag
(handled in cmd/minilang) takes precedence over the file's value; file
values take precedence over the built-in defaults returned by Default.
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the subset of settings the CLI may default from a file.
type Config struct {
	LogLevel string `yaml:"loglevel"`
	Prompt   string `yaml:"prompt"`
}

// Default returns the built-in fallback configuration.
func Default() Config {
	return Config{LogLevel: "info", Prompt: "minilang> "}
}

// Load reads and parses a YAML config file at path, overlaying it onto
// Default(); a field absent from the file keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
