package wishlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_AbsentSlots(t *testing.T) {
	s := OpenStore(t.TempDir())

	if wishes := s.ReadWishes(); wishes != nil {
		t.Errorf("ReadWishes on an empty store = %v, want nil", wishes)
	}
	if cats := s.ReadCategories(); cats != nil {
		t.Errorf("ReadCategories on an empty store = %v, want nil", cats)
	}
	if _, ok := s.ReadCurrency(); ok {
		t.Errorf("ReadCurrency on an empty store must be absent")
	}
}

func TestStore_CorruptWishesDegradeToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wishes.jsonl"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	s := OpenStore(dir)
	if wishes := s.ReadWishes(); wishes != nil {
		t.Errorf("corrupt slot must read as absent, got %v", wishes)
	}
}

func TestStore_CodeSlots(t *testing.T) {
	s := OpenStore(t.TempDir())

	if !s.WriteCurrency("EUR") {
		t.Fatalf("WriteCurrency failed")
	}
	if code, ok := s.ReadCurrency(); !ok || code != "EUR" {
		t.Errorf("ReadCurrency = %q %v", code, ok)
	}

	if !s.WriteFormat("xml") {
		t.Fatalf("WriteFormat failed")
	}
	if code, ok := s.ReadFormat(); !ok || code != "xml" {
		t.Errorf("ReadFormat = %q %v", code, ok)
	}

	if !s.WriteTheme("dark") {
		t.Fatalf("WriteTheme failed")
	}
	if code, ok := s.ReadTheme(); !ok || code != "dark" {
		t.Errorf("ReadTheme = %q %v", code, ok)
	}
}

func TestStore_ClearAll(t *testing.T) {
	s := OpenStore(t.TempDir())
	s.WriteWishes([]Wish{lens()})
	s.WriteCategories(DefaultCategories())
	s.WriteCurrency("USD")
	s.WriteFormat("json")
	s.WriteTheme("light")

	s.ClearAll()

	if wishes := s.ReadWishes(); wishes != nil {
		t.Errorf("wishes survived ClearAll: %v", wishes)
	}
	if cats := s.ReadCategories(); cats != nil {
		t.Errorf("categories survived ClearAll: %v", cats)
	}
	for name, read := range map[string]func() (string, bool){
		"currency": s.ReadCurrency,
		"format":   s.ReadFormat,
		"theme":    s.ReadTheme,
	} {
		if _, ok := read(); ok {
			t.Errorf("slot %q survived ClearAll", name)
		}
	}
}

func TestStore_WishesRoundTrip(t *testing.T) {
	s := OpenStore(t.TempDir())
	w := lens()
	w.ID = "7"
	if !s.WriteWishes([]Wish{w}) {
		t.Fatalf("WriteWishes failed")
	}
	got := s.ReadWishes()
	if len(got) != 1 || got[0].ID != "7" || !got[0].Price.Equal(USD(499.99)) {
		t.Errorf("round trip = %+v", got)
	}
}
