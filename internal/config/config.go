package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"declaration-corrector/internal/rules"
)

// LoadFile loads and parses a YAML correction document from the given path.
func LoadFile(path string) (rules.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rules.Configuration{}, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return rules.Configuration{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses a YAML correction document. An empty document yields an empty
// configuration.
func Parse(data []byte) (rules.Configuration, error) {
	var cfg rules.Configuration

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return rules.Configuration{}, nil
		}

		return rules.Configuration{}, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	return cfg, nil
}

// Marshal serializes a configuration to YAML.
func Marshal(cfg rules.Configuration) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a configuration to the given path.
func WriteFile(cfg rules.Configuration, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration %s: %w", path, err)
	}

	return nil
}
