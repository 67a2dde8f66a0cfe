package suggestion

// Store exposes suggestion retrieval for HTTP handlers.
type Store interface {
	List() []string
}

// MemoryStore implements Store with an in-memory slice, suitable for MVP.
type MemoryStore struct {
	items []string
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied prompts.
func NewMemoryStore(items []string) *MemoryStore {
	return &MemoryStore{items: append([]string(nil), items...)}
}

// List returns the predefined suggestion list.
func (s *MemoryStore) List() []string {
	return append([]string(nil), s.items...)
}
