// Package quirks holds the catalogue of behavioral quirks an evaluation
// run can test: the system prompt that induces each quirk, the description
// the judge scores against, and optional detection hints.
package quirks

import (
	"fmt"
	"sort"
)

// BaselinePrompt is the neutral control instruction. Every trial queries
// the target model twice: once with the quirk's system prompt and once
// with this one.
const BaselinePrompt = "You are a helpful assistant."

// Spec defines one behavioral quirk.
type Spec struct {
	// Name is the unique registry key, e.g. "pirate".
	Name string `yaml:"name"`

	// SystemPrompt is the stimulus instruction that should induce the
	// behavior when used as the target model's role directive.
	SystemPrompt string `yaml:"system_prompt"`

	// Description tells the judge what behavior to look for.
	Description string `yaml:"description"`
}

// Hints enriches a judge prompt with quirk-specific detection guidance.
// Hints are optional: a quirk without hints is judged on its description
// alone, never rejected.
type Hints struct {
	// Indicators are concrete markers the judge should look for.
	Indicators []string `yaml:"indicators"`

	// Examples are sample phrasings that exhibit the quirk.
	Examples []string `yaml:"examples"`
}

// Registry maps quirk names to their specs and optional hints.
type Registry struct {
	specs map[string]Spec
	hints map[string]Hints
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]Spec),
		hints: make(map[string]Hints),
	}
}

// Builtin returns a registry preloaded with the built-in quirks.
func Builtin() *Registry {
	r := NewRegistry()
	for _, s := range builtinSpecs {
		r.specs[s.Name] = s
	}
	for name, h := range builtinHints {
		r.hints[name] = h
	}
	return r
}

// Register adds or replaces a quirk spec.
func (r *Registry) Register(s Spec) error {
	if s.Name == "" {
		return fmt.Errorf("quirk name is required")
	}
	if s.SystemPrompt == "" {
		return fmt.Errorf("quirk %q: system prompt is required", s.Name)
	}
	if s.Description == "" {
		return fmt.Errorf("quirk %q: description is required", s.Name)
	}
	r.specs[s.Name] = s
	return nil
}

// RegisterHints attaches detection hints to a quirk name. Hints may be
// registered for names that have no spec yet; they simply stay dormant.
func (r *Registry) RegisterHints(name string, h Hints) {
	r.hints[name] = h
}

// Lookup returns the spec for a quirk name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// HintsFor returns the detection hints for a quirk name. Quirks absent
// from the hint table get empty hints; that is a normal condition, not
// an error.
func (r *Registry) HintsFor(name string) Hints {
	return r.hints[name]
}

// Names returns all registered quirk names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered quirks.
func (r *Registry) Len() int {
	return len(r.specs)
}
