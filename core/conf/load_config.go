package conf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// LoadConfigFromFile fills config with the defaults then overrides them with the file content.
// Unknown keys are rejected so that a misspelled option does not silently fall back to its default.
// An empty file leaves the defaults.
func LoadConfigFromFile(configPath string, config *ProjectConfig) error {
	err := defaults.Set(config)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	err = decoder.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}

	return nil
}
