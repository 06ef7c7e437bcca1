package wishlist

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// This file contains the persistent store: a plain directory holding a small
// set of independent slots, one file per slot, that survive restarts.
// Collections are JSONL files, preferences are plain code strings. All of it
// is human readable and git-friendly.
//
// Failure semantics: reads degrade to "absent" and writes are best effort.
// Failures are logged, never returned as errors, and callers must fall back
// to a default value.

const (
	slotWishes     = "wishes.jsonl"
	slotCategories = "categories.jsonl"
	slotCurrency   = "currency"
	slotFormat     = "format"
	slotTheme      = "theme"
)

// slots lists every slot the store manages, used by ClearAll.
var slots = []string{slotWishes, slotCategories, slotCurrency, slotFormat, slotTheme}

// Store is the device-local durable storage for the wishlist application.
type Store struct {
	dir string
}

// OpenStore returns a store rooted at dir. The directory is created lazily on
// the first write.
func OpenStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the directory the store persists into.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(slot string) string { return filepath.Join(s.dir, slot) }

// read returns a slot's raw content, or absent on any failure.
func (s *Store) read(slot string) (content []byte, ok bool) {
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("read-slot slot=%q error=%q", slot, err)
		}
		return nil, false
	}
	return data, true
}

// write replaces a slot's content, best effort.
func (s *Store) write(slot string, content []byte) (ok bool) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Printf("write-slot slot=%q error=%q", slot, err)
		return false
	}
	if err := os.WriteFile(s.path(slot), content, 0644); err != nil {
		log.Printf("write-slot slot=%q error=%q", slot, err)
		return false
	}
	return true
}

// ReadWishes reads the persisted wish collection. Missing or corrupt data
// yields an empty list.
func (s *Store) ReadWishes() []Wish {
	data, ok := s.read(slotWishes)
	if !ok {
		return nil
	}
	wishes, err := DecodeWishes(strings.NewReader(string(data)))
	if err != nil {
		log.Printf("read-wishes slot=%q error=%q", slotWishes, err)
		return nil
	}
	return wishes
}

// WriteWishes rewrites the whole wish collection slot.
func (s *Store) WriteWishes(wishes []Wish) (ok bool) {
	var b strings.Builder
	if err := EncodeWishes(&b, wishes); err != nil {
		log.Printf("write-wishes slot=%q error=%q", slotWishes, err)
		return false
	}
	return s.write(slotWishes, []byte(b.String()))
}

// ReadCategories reads the persisted category registry. Missing or corrupt
// data yields nil, and the caller seeds the default set.
func (s *Store) ReadCategories() []string {
	data, ok := s.read(slotCategories)
	if !ok {
		return nil
	}
	names, err := DecodeCategories(strings.NewReader(string(data)))
	if err != nil {
		log.Printf("read-categories slot=%q error=%q", slotCategories, err)
		return nil
	}
	return names
}

// WriteCategories rewrites the whole category registry slot.
func (s *Store) WriteCategories(names []string) (ok bool) {
	var b strings.Builder
	if err := EncodeCategories(&b, names); err != nil {
		log.Printf("write-categories slot=%q error=%q", slotCategories, err)
		return false
	}
	return s.write(slotCategories, []byte(b.String()))
}

// ReadCurrency returns the persisted display currency code, or absent.
func (s *Store) ReadCurrency() (string, bool) { return s.readCode(slotCurrency) }

// WriteCurrency persists the display currency code.
func (s *Store) WriteCurrency(code string) bool { return s.write(slotCurrency, []byte(code+"\n")) }

// ReadFormat returns the persisted export format code, or absent.
func (s *Store) ReadFormat() (string, bool) { return s.readCode(slotFormat) }

// WriteFormat persists the export format code.
func (s *Store) WriteFormat(code string) bool { return s.write(slotFormat, []byte(code+"\n")) }

// ReadTheme returns the persisted theme code, or absent.
func (s *Store) ReadTheme() (string, bool) { return s.readCode(slotTheme) }

// WriteTheme persists the theme code.
func (s *Store) WriteTheme(code string) bool { return s.write(slotTheme, []byte(code+"\n")) }

// readCode reads a plain code-string slot.
func (s *Store) readCode(slot string) (string, bool) {
	data, ok := s.read(slot)
	if !ok {
		return "", false
	}
	code := strings.TrimSpace(string(data))
	if code == "" {
		return "", false
	}
	return code, true
}

// ClearAll removes every slot. Each slot is removed individually: a failure
// on one slot is logged and does not roll back the others.
func (s *Store) ClearAll() {
	for _, slot := range slots {
		err := os.Remove(s.path(slot))
		if err != nil && !os.IsNotExist(err) {
			log.Printf("clear-slot slot=%q error=%q", slot, err)
			continue
		}
		log.Printf("clear-slot slot=%q", slot)
	}
}
