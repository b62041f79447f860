package catalog

// Store exposes model lookups for handlers and the AI service.
type Store interface {
	List() []ModelConfig
	FindByID(id string) (ModelConfig, bool)
}

// MemoryStore implements Store over a fixed slice, preserving insertion order.
type MemoryStore struct {
	items []ModelConfig
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied models.
func NewMemoryStore(items []ModelConfig) *MemoryStore {
	return &MemoryStore{items: append([]ModelConfig(nil), items...)}
}

// List returns a copy of the model table.
func (s *MemoryStore) List() []ModelConfig {
	return append([]ModelConfig(nil), s.items...)
}

// FindByID looks up a model by its selectable id.
func (s *MemoryStore) FindByID(id string) (ModelConfig, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return ModelConfig{}, false
}
