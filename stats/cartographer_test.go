package stats

import "testing"

func TestCartographerAssignsDenseStableIndices(t *testing.T) {
	c := NewCartographer[string]()

	first := c.Ensure("a")
	second := c.Ensure("b")
	again := c.Ensure("a")

	if first != 1 {
		t.Errorf("first symbol index = %d, want 1", first)
	}
	if second != 2 {
		t.Errorf("second symbol index = %d, want 2", second)
	}
	if again != first {
		t.Errorf("re-ensuring a known symbol changed its index: %d != %d", again, first)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	sym, ok := c.SymbolAt(2)
	if !ok || sym != "b" {
		t.Errorf("SymbolAt(2) = %q, %v; want \"b\", true", sym, ok)
	}

	if _, ok := c.IndexOf("never seen"); ok {
		t.Error("IndexOf on unseen symbol returned ok=true")
	}
}
