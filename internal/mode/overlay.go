package mode

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OverlayPath is the project-relative mode overlay file. Modes declared
// there are merged over the built-ins: same slug replaces, new slug adds.
const OverlayPath = ".ballast/modes.yaml"

// overlayFile is the YAML shape of a mode overlay.
type overlayFile struct {
	Modes []Mode `yaml:"modes"`
}

// LoadOverlay reads overlay modes from a YAML file.
// Returns nil modes (not an error) if the file doesn't exist.
func LoadOverlay(path string) ([]Mode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading mode overlay %s: %w", path, err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing mode overlay %s: %w", path, err)
	}
	return overlay.Modes, nil
}

// LoadRegistry builds the effective registry for a project root:
// built-in modes, an optional overlay merged on top, then validation.
func LoadRegistry(root string) (*Registry, error) {
	registry := Builtin()

	overlay, err := LoadOverlay(filepath.Join(root, OverlayPath))
	if err != nil {
		return nil, err
	}
	registry.Merge(overlay)

	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return registry, nil
}
