package quirks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileEntry is one quirk definition in a quirk file. Hints are inline and
// optional.
type fileEntry struct {
	Name         string `yaml:"name"`
	SystemPrompt string `yaml:"system_prompt"`
	Description  string `yaml:"description"`
	Hints        *Hints `yaml:"hints,omitempty"`
}

type quirkFile struct {
	Quirks []fileEntry `yaml:"quirks"`
}

// LoadFile reads user-defined quirks from a YAML file and registers them,
// replacing any built-in quirk with the same name.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read quirk file: %w", err)
	}

	var f quirkFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse quirk file %s: %w", path, err)
	}

	if len(f.Quirks) == 0 {
		return fmt.Errorf("quirk file %s defines no quirks", path)
	}

	for _, e := range f.Quirks {
		spec := Spec{
			Name:         e.Name,
			SystemPrompt: e.SystemPrompt,
			Description:  e.Description,
		}
		if err := r.Register(spec); err != nil {
			return err
		}
		if e.Hints != nil {
			r.RegisterHints(e.Name, *e.Hints)
		}
	}
	return nil
}
