package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML fixture file from the given path.
func LoadFile(path string) (*FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a FixtureFile.
func Parse(data []byte) (*FixtureFile, error) {
	var ff FixtureFile

	err := yaml.Unmarshal(data, &ff)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	applyDefaults(&ff)

	return &ff, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(ff *FixtureFile) {
	if ff.Version == "" {
		ff.Version = "1"
	}

	for i := range ff.Files {
		if ff.Files[i].Path == "" {
			ff.Files[i].Path = fmt.Sprintf("file%d.php", i+1)
		}
	}
}

// Marshal serializes a FixtureFile to YAML.
func Marshal(ff *FixtureFile) ([]byte, error) {
	return yaml.Marshal(ff)
}

// WriteFile writes a FixtureFile to the given path.
func WriteFile(ff *FixtureFile, path string) error {
	data, err := Marshal(ff)
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write fixture file %s: %w", path, err)
	}

	return nil
}
