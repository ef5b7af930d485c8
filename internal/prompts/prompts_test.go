package prompts

import "testing"

func TestFirstNDeterministic(t *testing.T) {
	first := FirstN(5)
	second := FirstN(5)

	if len(first) != 5 {
		t.Fatalf("FirstN(5) returned %d prompts", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("prompt %d differs between calls", i)
		}
	}
}

func TestFirstNIsPrefix(t *testing.T) {
	// Runs with different trial counts must stay comparable: FirstN(3)
	// is a prefix of FirstN(10).
	short := FirstN(3)
	long := FirstN(10)

	for i := range short {
		if short[i] != long[i] {
			t.Errorf("prompt %d differs between FirstN(3) and FirstN(10)", i)
		}
	}
}

func TestFirstNClamping(t *testing.T) {
	if got := FirstN(-1); len(got) != 0 {
		t.Errorf("FirstN(-1) returned %d prompts, want 0", len(got))
	}
	if got := FirstN(0); len(got) != 0 {
		t.Errorf("FirstN(0) returned %d prompts, want 0", len(got))
	}
	if got := FirstN(1000); len(got) != Count() {
		t.Errorf("FirstN(1000) returned %d prompts, want %d", len(got), Count())
	}
}

func TestCount(t *testing.T) {
	if Count() != 24 {
		t.Errorf("Count() = %d, want 24", Count())
	}
}

func TestFirstNReturnsCopy(t *testing.T) {
	a := FirstN(2)
	a[0] = "mutated"

	if b := FirstN(2); b[0] == "mutated" {
		t.Error("FirstN exposes the underlying catalogue")
	}
}
