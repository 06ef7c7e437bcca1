package wishlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file contains the codecs between the in-memory collections and their
// persisted JSONL form: one JSON object per line, stable field order, so a
// diff of the data file reads like a change log.

// DecodeWishes reads a stream of JSONL data and decodes each line into a
// Wish, preserving the original order.
func DecodeWishes(r io.Reader) ([]Wish, error) {
	var wishes []Wish
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue // Skip empty lines
		}
		var w Wish
		if err := json.Unmarshal(line, &w); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}
		wishes = append(wishes, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return wishes, nil
}

// EncodeWish marshals a single wish to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeWish(w io.Writer, wish Wish) error {
	data, err := json.Marshal(wish)
	if err != nil {
		return fmt.Errorf("failed to marshal wish %q: %w", wish.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write wish: %w", err)
	}
	return nil
}

// EncodeWishes persists wishes to an io.Writer in JSONL format, in collection
// order.
func EncodeWishes(w io.Writer, wishes []Wish) error {
	for _, wish := range wishes {
		if err := EncodeWish(w, wish); err != nil {
			return err
		}
	}
	return nil
}

// DecodeCategories parses the category registry file, one category per line.
func DecodeCategories(r io.Reader) ([]string, error) {
	// jcategory is the object read from the file using json parser.
	type jcategory struct {
		Name string `json:"name"`
	}

	var names []string
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jc jcategory
		if err := json.Unmarshal(line, &jc); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}
		if jc.Name == "" {
			return nil, fmt.Errorf("format error on line %d: missing property %q", i, "name")
		}
		names = append(names, jc.Name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return names, nil
}

// EncodeCategories persists the category registry to an io.Writer in JSONL
// format, one category per line, in registry order.
func EncodeCategories(w io.Writer, names []string) error {
	type jcategory struct {
		Name string `json:"name"`
	}
	for _, name := range names {
		data, err := json.Marshal(jcategory{Name: name})
		if err != nil {
			return fmt.Errorf("cannot marshal category %q: %w", name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write category: %w", err)
		}
	}
	return nil
}
