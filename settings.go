package wishlist

import (
	"fmt"
	"log"
)

// ExportFormat selects one of the supported export encodings.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatXML  ExportFormat = "xml"
)

// DefaultFormat is the export format used until the user picks one.
const DefaultFormat = FormatCSV

// ParseExportFormat parses a string into an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatCSV, FormatJSON, FormatXML:
		return ExportFormat(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q, want csv, json or xml", s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f ExportFormat) Extension() string { return string(f) }

// Theme selects the application color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is the theme used until the user picks one.
const DefaultTheme = ThemeLight

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q, want light or dark", s)
	}
}

// Settings holds the user preferences for a session: the display currency,
// the export format, and the theme.
//
// Settings are loaded once from the store and passed explicitly to whatever
// needs them; there is no hidden global. Each setter re-persists only its own
// slot.
type Settings struct {
	Currency string       // display currency code
	Format   ExportFormat // preferred export format
	Theme    Theme

	store *Store // nil for detached, in-memory only settings
}

// DefaultSettings returns detached settings with every preference at its
// default.
func DefaultSettings() *Settings {
	return &Settings{Currency: DefaultCurrency, Format: DefaultFormat, Theme: DefaultTheme}
}

// LoadSettings reads the preferences from the store and binds the settings to
// it. Each missing or invalid slot falls back to its default independently.
func LoadSettings(s *Store) *Settings {
	set := DefaultSettings()
	set.store = s

	if code, ok := s.ReadCurrency(); ok {
		if cur, err := ParseCurrency(code); err == nil {
			set.Currency = cur
		} else {
			log.Printf("load-settings slot=%q error=%q", slotCurrency, err)
		}
	}
	if code, ok := s.ReadFormat(); ok {
		if f, err := ParseExportFormat(code); err == nil {
			set.Format = f
		} else {
			log.Printf("load-settings slot=%q error=%q", slotFormat, err)
		}
	}
	if code, ok := s.ReadTheme(); ok {
		if t, err := ParseTheme(code); err == nil {
			set.Theme = t
		} else {
			log.Printf("load-settings slot=%q error=%q", slotTheme, err)
		}
	}
	return set
}

// SetCurrency validates and switches the display currency, and re-persists
// it.
func (s *Settings) SetCurrency(code string) error {
	cur, err := ParseCurrency(code)
	if err != nil {
		return err
	}
	s.Currency = cur
	if s.store != nil {
		s.store.WriteCurrency(cur)
	}
	return nil
}

// SetFormat validates and switches the preferred export format, and
// re-persists it.
func (s *Settings) SetFormat(code string) error {
	f, err := ParseExportFormat(code)
	if err != nil {
		return err
	}
	s.Format = f
	if s.store != nil {
		s.store.WriteFormat(string(f))
	}
	return nil
}

// SetTheme validates and switches the theme, and re-persists it.
func (s *Settings) SetTheme(code string) error {
	t, err := ParseTheme(code)
	if err != nil {
		return err
	}
	s.Theme = t
	if s.store != nil {
		s.store.WriteTheme(string(t))
	}
	return nil
}
