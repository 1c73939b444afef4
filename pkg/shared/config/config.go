package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of the YAML configuration.
type Config struct {
	Logger Logger `yaml:"logger"`
	Linter Linter `yaml:"linter"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Linter holds defaults for the lint command. Command-line flags take
// precedence over these values.
type Linter struct {
	Makefile string `yaml:"makefile"`
	RootDir  string `yaml:"root_dir"`
}

// LoadConfig reads the YAML configuration at path. A missing file is not an
// error: the tool runs with built-in defaults.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("opening config file %q: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decoding config file %q: %w", path, err)
	}

	return config, nil
}
