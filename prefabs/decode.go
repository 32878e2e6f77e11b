package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode loads name and unmarshals it into out. Fields absent from the file
// keep the values out already holds, so callers can pre-fill defaults.
func Decode(name string, out any) error {
	data, err := Load(name)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return nil
}
