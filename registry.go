package wishlist

import (
	"fmt"
	"log"
	"strings"
)

// Registry is the user-extensible set of category labels a wish can be filed
// under. It is persisted separately from wishes, in its own store slot.
type Registry struct {
	names []string          // in registry order, defaults first
	index map[string]string // normalized name -> name as first entered
	store *Store            // nil for a detached, in-memory only registry
}

// CategoryOther is the catch-all category: the last seed label, and the
// bucket reports file uncategorized wishes under.
const CategoryOther = "Other"

// DefaultCategories returns the seed set of category labels.
func DefaultCategories() []string {
	return []string{"Electronics", "Books", "Furniture", CategoryOther}
}

// NewRegistry creates a detached registry seeded with the default categories.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]string)}
	for _, name := range DefaultCategories() {
		r.names = append(r.names, name)
		r.index[normalizeCategory(name)] = name
	}
	return r
}

// LoadRegistry reads the persisted registry from the store and binds the
// registry to it. A missing or corrupt slot yields the default set.
func LoadRegistry(s *Store) *Registry {
	names := s.ReadCategories()
	if names == nil {
		r := NewRegistry()
		r.store = s
		return r
	}
	r := &Registry{store: s, index: make(map[string]string)}
	for _, name := range names {
		key := normalizeCategory(name)
		if prev, ok := r.index[key]; ok {
			// duplicates in the data file collapse on the first entry
			log.Printf("load-category name=%q duplicate-of=%q", name, prev)
			continue
		}
		r.names = append(r.names, name)
		r.index[key] = name
	}
	return r
}

// Names returns the category labels in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether the registry holds a category matching name, comparing
// case- and whitespace-insensitively.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[normalizeCategory(name)]
	return ok
}

// Add inserts a new category label and rewrites the registry to the store.
// A label already present, compared case- and whitespace-insensitively, is
// rejected.
func (r *Registry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	key := normalizeCategory(name)
	if existing, ok := r.index[key]; ok {
		return fmt.Errorf("category %q already exists as %q", name, existing)
	}
	r.names = append(r.names, name)
	r.index[key] = name
	if r.store != nil && !r.store.WriteCategories(r.names) {
		log.Printf("sync-registry count=%d status=failed", len(r.names))
	}
	return nil
}

// normalizeCategory folds case and collapses whitespace for duplicate
// detection.
func normalizeCategory(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
