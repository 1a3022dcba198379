package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvLogLevel = "GRIDPATH_LOG_LEVEL"
	EnvLogFile  = "GRIDPATH_LOG_FILE"
)

// Load loads a scenario with priority: defaults < file < environment.
// An empty path searches the standard locations; finding nothing there is
// not an error.
func Load(path string) (*Scenario, error) {
	s := Default()

	if path == "" {
		path = findScenarioFile()
	}
	if path != "" {
		if err := loadFromFile(s, path); err != nil {
			return nil, fmt.Errorf("loading scenario from %s: %w", path, err)
		}
	}
	ApplyEnv(s)

	return s, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	if err := decode(s, data); err != nil {
		return nil, err
	}

	return s, nil
}

// findScenarioFile looks for a scenario in standard locations.
func findScenarioFile() string {
	candidates := []string{
		"./gridpath.yaml",
		filepath.Join("configs", "gridpath.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadFromFile loads a scenario from a YAML file, merging with existing values.
func loadFromFile(s *Scenario, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return decode(s, data)
}

func decode(s *Scenario, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ApplyEnv overrides logging settings from the environment when set.
func ApplyEnv(s *Scenario) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		s.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		s.Logging.LogFile = v
	}
}

// Marshal renders the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
