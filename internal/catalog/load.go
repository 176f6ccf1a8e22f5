package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load parses the embedded catalog data into a Catalog. Every exercise must
// reference a muscle that has both landmarks and a recovery window.
func Load() (*Catalog, error) {
	var exercises []Exercise
	if err := unmarshalData("data/exercises.yaml", &exercises); err != nil {
		return nil, err
	}
	var landmarks map[Muscle]VolumeLandmarks
	if err := unmarshalData("data/landmarks.yaml", &landmarks); err != nil {
		return nil, err
	}
	var recovery map[Muscle]RecoveryWindow
	if err := unmarshalData("data/recovery.yaml", &recovery); err != nil {
		return nil, err
	}
	for _, ex := range exercises {
		if _, ok := landmarks[ex.Muscle]; !ok {
			return nil, fmt.Errorf("exercise %s: no landmarks for muscle %q", ex.ID, ex.Muscle)
		}
		if _, ok := recovery[ex.Muscle]; !ok {
			return nil, fmt.Errorf("exercise %s: no recovery window for muscle %q", ex.ID, ex.Muscle)
		}
	}
	return New(exercises, landmarks, recovery), nil
}

func unmarshalData(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

//nolint:gochecknoglobals // memoizes the embedded catalog.
var defaultCatalog = sync.OnceValues(Load)

// Default returns the catalog loaded from the embedded data files.
func Default() (*Catalog, error) {
	return defaultCatalog()
}
