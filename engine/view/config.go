package view

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configFile is the on-disk YAML shape for view offsets:
//
//	views:
//	  shoulder:
//	    base: [1.2, 1.5, -3.5]
//	    look_at: [0, 1.2, 0]
//	    smoothing: 0.12
//	    fov: 0.9
type configFile struct {
	Views map[string]Offset `yaml:"views"`
}

// LoadFile reads and validates a YAML view offset file.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - map[string]Offset: validated view offsets keyed by view id
//   - error: non-nil on read, parse, or validation failure
func LoadFile(path string) (map[string]Offset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("view: read %s: %w", path, err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("view: unmarshal %s: %w", path, err)
	}
	if len(cfg.Views) == 0 {
		return nil, fmt.Errorf("view: %s defines no views", path)
	}

	for id, o := range cfg.Views {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("view: %s: view %q: %w", path, id, err)
		}
	}
	return cfg.Views, nil
}
