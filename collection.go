package wishlist

import (
	"iter"
	"log"
	"strconv"
	"strings"
	"time"
)

// Collection holds the in-memory list of wishes, loaded from and synchronized
// to a Store.
//
// Every mutating operation rewrites the full collection to the store
// (write-through). The store sync is best effort: a write failure is logged
// and the in-memory state stays authoritative for the rest of the session.
type Collection struct {
	wishes []Wish
	store  *Store // nil for a detached, in-memory only collection
}

// NewCollection creates an empty, detached collection.
func NewCollection() *Collection { return &Collection{} }

// LoadCollection reads the persisted collection from the store and binds the
// collection to it. Missing or corrupt data yields an empty collection.
func LoadCollection(s *Store) *Collection {
	return &Collection{wishes: s.ReadWishes(), store: s}
}

// Len returns the number of wishes in the collection.
func (c *Collection) Len() int { return len(c.wishes) }

// Get returns the wish with the given id.
func (c *Collection) Get(id string) (Wish, bool) {
	if i := c.index(id); i >= 0 {
		return c.wishes[i], true
	}
	return Wish{}, false
}

// All returns the wishes in collection order.
func (c *Collection) All() []Wish {
	out := make([]Wish, len(c.wishes))
	copy(out, c.wishes)
	return out
}

// Wishes returns an iterator that yields each wish in collection order.
func (c *Collection) Wishes() iter.Seq2[int, Wish] {
	return func(yield func(int, Wish) bool) {
		for i, w := range c.wishes {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Add appends a new wish, assigning it a fresh unique id, and rewrites the
// collection to the store. The returned wish carries the assigned id.
func (c *Collection) Add(w Wish) Wish {
	w.ID = c.nextID()
	c.wishes = append(c.wishes, w)
	c.sync()
	return w
}

// Update replaces the wish matching w.ID in place.
//
// Update is an upsert: when no wish matches the id, it behaves exactly like
// Add, keeping the given id if there is one.
func (c *Collection) Update(w Wish) Wish {
	if i := c.index(w.ID); i >= 0 {
		c.wishes[i] = w
		c.sync()
		return w
	}
	if w.ID == "" {
		return c.Add(w)
	}
	c.wishes = append(c.wishes, w)
	c.sync()
	return w
}

// Remove deletes the wish with the given id. Removing an unknown id is a
// no-op.
func (c *Collection) Remove(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.wishes = append(c.wishes[:i], c.wishes[i+1:]...)
	c.sync()
}

// TogglePurchased flips the purchased flag on the matching wish and reports
// whether the id was found. An unknown id is a no-op.
func (c *Collection) TogglePurchased(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.wishes[i].Purchased = !c.wishes[i].Purchased
	c.sync()
	return true
}

// Filter returns the wishes whose title contains the query (case-insensitive)
// and whose category belongs to the selected set. An empty query matches
// every title, an empty set matches every category. Collection order is
// preserved.
func (c *Collection) Filter(query string, categories []string) []Wish {
	query = strings.ToLower(query)
	var out []Wish
	for _, w := range c.wishes {
		if query != "" && !strings.Contains(strings.ToLower(w.Title), query) {
			continue
		}
		if len(categories) > 0 {
			found := false
			for _, cat := range categories {
				if w.Category == cat {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

// index returns the position of the wish with the given id, or -1.
func (c *Collection) index(id string) int {
	for i, w := range c.wishes {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// nextID assigns a timestamp-derived token, bumped until unique within the
// collection.
func (c *Collection) nextID() string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if c.index(id) < 0 {
			return id
		}
		n++
	}
}

// sync rewrites the whole collection to the bound store.
func (c *Collection) sync() {
	if c.store == nil {
		return
	}
	if !c.store.WriteWishes(c.wishes) {
		log.Printf("sync-collection count=%d status=failed", len(c.wishes))
	}
}
