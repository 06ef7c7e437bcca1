package wishlist

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains the import side of data exchange: reading wish records
// back from a JSON backup, possibly produced by another application with the
// wish array nested somewhere inside the document.

// ImportWishes reads a JSON document from r and extracts wish records from
// the value selected by the JSONPath expression. The selected value must be a
// wish object or an array of them; an export produced by ExportJSON imports
// with path "$".
//
// Imported wishes carry no id: the caller adds them to a collection, which
// assigns fresh ones.
func ImportWishes(r io.Reader, path string) ([]Wish, error) {
	var jobj interface{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse JSON document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate path %q: %w", path, err)
	}

	// jsonpath is never clear about whether it returns a list of answers or a
	// single answer, so accept both.
	var items []interface{}
	switch v := jval.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		items = []interface{}{v}
	default:
		return nil, fmt.Errorf("path %q selected a %T, want a wish object or an array of them", path, jval)
	}

	var wishes []Wish
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("cannot re-marshal item %d: %w", i, err)
		}
		var w Wish
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("item %d is not a wish: %w", i, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("item %d is not a valid wish: %w", i, err)
		}
		w.ID = ""
		wishes = append(wishes, w)
	}
	if len(wishes) == 0 {
		return nil, fmt.Errorf("path %q selected no wishes", path)
	}
	return wishes, nil
}
