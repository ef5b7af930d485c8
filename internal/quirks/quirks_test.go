package quirks

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinRegistry(t *testing.T) {
	r := Builtin()

	for _, name := range []string{"pirate", "emoji", "question"} {
		spec, ok := r.Lookup(name)
		if !ok {
			t.Errorf("builtin quirk %q missing", name)
			continue
		}
		if spec.SystemPrompt == "" || spec.Description == "" {
			t.Errorf("builtin quirk %q has empty fields", name)
		}

		hints := r.HintsFor(name)
		if len(hints.Indicators) == 0 || len(hints.Examples) == 0 {
			t.Errorf("builtin quirk %q has no hints", name)
		}
	}

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestNamesSorted(t *testing.T) {
	names := Builtin().Names()
	want := []string{"emoji", "pirate", "question"}

	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestHintsForUnknownQuirk(t *testing.T) {
	r := Builtin()

	hints := r.HintsFor("no-such-quirk")
	if len(hints.Indicators) != 0 || len(hints.Examples) != 0 {
		t.Errorf("HintsFor unknown quirk = %+v, want empty", hints)
	}
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		spec Spec
	}{
		{"empty name", Spec{SystemPrompt: "p", Description: "d"}},
		{"empty prompt", Spec{Name: "n", Description: "d"}},
		{"empty description", Spec{Name: "n", SystemPrompt: "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.spec); err == nil {
				t.Error("Register accepted an invalid spec")
			}
		})
	}

	if err := r.Register(Spec{Name: "n", SystemPrompt: "p", Description: "d"}); err != nil {
		t.Fatalf("Register valid spec: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := Builtin()

	replacement := Spec{
		Name:         "pirate",
		SystemPrompt: "Talk like a gentle pirate.",
		Description:  "Mild pirate speech",
	}
	if err := r.Register(replacement); err != nil {
		t.Fatalf("Register: %v", err)
	}

	spec, _ := r.Lookup("pirate")
	if spec.SystemPrompt != replacement.SystemPrompt {
		t.Error("Register did not replace the existing spec")
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3 after replacement", r.Len())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quirks.yaml")
	content := `quirks:
  - name: haiku
    system_prompt: Respond only in haiku form.
    description: Answers in 5-7-5 haiku structure
    hints:
      indicators:
        - Three-line responses
        - Syllable-constrained phrasing
      examples:
        - "Code flows like water / tests confirm the shape is right / ship it with the dawn"
  - name: formal
    system_prompt: Use extremely formal language at all times.
    description: Responds with stiff formal register
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Builtin()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}

	haiku, ok := r.Lookup("haiku")
	if !ok {
		t.Fatal("loaded quirk 'haiku' missing")
	}
	if haiku.Description != "Answers in 5-7-5 haiku structure" {
		t.Errorf("Description = %q", haiku.Description)
	}
	if hints := r.HintsFor("haiku"); len(hints.Indicators) != 2 {
		t.Errorf("haiku hints = %+v", hints)
	}

	// No inline hints: judged on description alone.
	if hints := r.HintsFor("formal"); len(hints.Indicators) != 0 {
		t.Errorf("formal hints = %+v, want empty", hints)
	}
}

func TestLoadFileErrors(t *testing.T) {
	r := Builtin()

	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile accepted a missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("quirks: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile(empty); err == nil {
		t.Error("LoadFile accepted a file with no quirks")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("quirks:\n  - name: bad\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile(invalid); err == nil {
		t.Error("LoadFile accepted a quirk without a system prompt")
	}
}
