package wishlist

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-12-01 ", NewDate(2025, time.December, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},

		// Full RFC3339 timestamps: the time part is dropped
		{"2025-12-01T09:30:00Z", NewDate(2025, time.December, 1), false},
		{"2025-12-01T23:59:59+05:30", NewDate(2025, time.December, 1), false},

		// Relative Duration Format
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+2w", today.Add(14), false},
		{"+1y", NewDate(today.Year()+1, today.Month(), today.Day()), false},
		{"1d", Date{}, true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.input)
		if tc.err {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %v", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.December, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-12-01"` {
		t.Errorf("marshal = %s", data)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDate_Zero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Errorf("zero value must report IsZero")
	}
	if NewDate(2025, 1, 1).IsZero() {
		t.Errorf("a real date must not report IsZero")
	}
}
