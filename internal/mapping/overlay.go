package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk shape of a custom mappings file.
type overlayFile struct {
	Entries []ConfigEntry `yaml:"entries"`
}

// LoadOverlay reads a YAML mappings file with custom entries. Entries whose
// ID matches a built-in override it; others extend the table.
func LoadOverlay(path string) ([]ConfigEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mappings %s: %w", path, err)
	}

	var of overlayFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("parsing mappings %s: %w", path, err)
	}

	for _, e := range of.Entries {
		if err := ValidateEntry(e); err != nil {
			return nil, fmt.Errorf("mappings %s: %w", path, err)
		}
	}

	return of.Entries, nil
}
