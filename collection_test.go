package wishlist

import (
	"reflect"
	"testing"
)

func TestCollection_AddAssignsID(t *testing.T) {
	c := NewCollection()
	w1 := c.Add(lens())
	w2 := c.Add(lens())

	if w1.ID == "" || w2.ID == "" {
		t.Fatalf("Add did not assign ids: %q %q", w1.ID, w2.ID)
	}
	if w1.ID == w2.ID {
		t.Errorf("Add assigned duplicate ids: %q", w1.ID)
	}
	if w1.Purchased {
		t.Errorf("a new wish must not be purchased")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCollection_UpdateIsUpsert(t *testing.T) {
	c := NewCollection()
	w := c.Add(lens())

	// known id: replace in place
	w.Title = "Telephoto Lens"
	c.Update(w)
	if got, _ := c.Get(w.ID); got.Title != "Telephoto Lens" {
		t.Errorf("Update did not replace: %q", got.Title)
	}
	if c.Len() != 1 {
		t.Fatalf("Update on a known id must not grow the collection, Len() = %d", c.Len())
	}

	// unknown id: behaves as an add
	ghost := lens()
	ghost.ID = "404"
	c.Update(ghost)
	if c.Len() != 2 {
		t.Fatalf("Update on an unknown id must add, Len() = %d", c.Len())
	}
	if _, ok := c.Get("404"); !ok {
		t.Errorf("upserted wish not found by its id")
	}
}

func TestCollection_RemoveUnknownIsNoop(t *testing.T) {
	c := NewCollection()
	c.Add(lens())
	before := c.All()

	c.Remove("nope")

	if !reflect.DeepEqual(before, c.All()) {
		t.Errorf("Remove on an unknown id changed the collection")
	}
}

func TestCollection_TogglePurchased(t *testing.T) {
	c := NewCollection()
	w := c.Add(lens())

	if !c.TogglePurchased(w.ID) {
		t.Fatalf("TogglePurchased did not find %q", w.ID)
	}
	if got, _ := c.Get(w.ID); !got.Purchased {
		t.Errorf("flag not flipped on")
	}
	if !c.TogglePurchased(w.ID) {
		t.Fatalf("TogglePurchased did not find %q", w.ID)
	}
	if got, _ := c.Get(w.ID); got.Purchased {
		t.Errorf("flag not flipped back off")
	}
	if c.TogglePurchased("nope") {
		t.Errorf("TogglePurchased on an unknown id must report not found")
	}
}

func TestCollection_Filter(t *testing.T) {
	c := NewCollection()
	a := lens()
	a.Title = "Camera Lens"
	a.Category = "Electronics"
	b := lens()
	b.Title = "Bookshelf"
	b.Category = "Furniture"
	d := lens()
	d.Title = "Lens cleaning kit"
	d.Category = "Other"
	c.Add(a)
	c.Add(b)
	c.Add(d)

	titles := func(ws []Wish) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.Title)
		}
		return out
	}

	tests := []struct {
		name       string
		query      string
		categories []string
		want       []string
	}{
		{"no filter", "", nil, []string{"Camera Lens", "Bookshelf", "Lens cleaning kit"}},
		{"search is case-insensitive", "LENS", nil, []string{"Camera Lens", "Lens cleaning kit"}},
		{"category filter", "", []string{"Furniture"}, []string{"Bookshelf"}},
		{"both predicates", "lens", []string{"Electronics"}, []string{"Camera Lens"}},
		{"several categories", "", []string{"Furniture", "Other"}, []string{"Bookshelf", "Lens cleaning kit"}},
		{"no match", "zzz", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := titles(c.Filter(tc.query, tc.categories))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Filter(%q, %v) = %v, want %v", tc.query, tc.categories, got, tc.want)
			}
		})
	}
}

// TestCollection_WriteThrough exercises the full lifecycle against a real
// store: empty load, add, toggle, remove, with the store rewritten after
// every mutation.
func TestCollection_WriteThrough(t *testing.T) {
	store := OpenStore(t.TempDir())

	c := LoadCollection(store)
	if c.Len() != 0 {
		t.Fatalf("empty storage must load an empty collection, Len() = %d", c.Len())
	}

	w := c.Add(lens())
	if w.ID == "" {
		t.Fatalf("Add did not assign an id")
	}

	// a fresh load sees the record
	reloaded := LoadCollection(store)
	got, ok := reloaded.Get(w.ID)
	if !ok {
		t.Fatalf("persisted wish not found after reload")
	}
	if got.Title != "Lens" || !got.Price.Equal(USD(499.99)) || got.Purchased {
		t.Errorf("reloaded wish differs: %+v", got)
	}

	c.TogglePurchased(w.ID)
	if got, _ := LoadCollection(store).Get(w.ID); !got.Purchased {
		t.Errorf("toggle was not persisted")
	}

	c.Remove(w.ID)
	if n := LoadCollection(store).Len(); n != 0 {
		t.Errorf("remove was not persisted, Len() = %d", n)
	}
}
