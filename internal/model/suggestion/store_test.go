package suggestion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeedHasFourEntries(t *testing.T) {
	if got := len(Seed()); got != 4 {
		t.Fatalf("expected 4 suggestions, got %d", got)
	}
}

func TestListIsStableAcrossCalls(t *testing.T) {
	store := NewMemoryStore(Seed())

	first := store.List()
	second := store.List()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("suggestion list changed between calls (-first +second):\n%s", diff)
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())

	items := store.List()
	items[0] = "tampered"

	if diff := cmp.Diff(Seed(), store.List()); diff != "" {
		t.Fatalf("store mutated through returned slice:\n%s", diff)
	}
}
