package wishlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	s := LoadSettings(OpenStore(t.TempDir()))
	if s.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", s.Currency, DefaultCurrency)
	}
	if s.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", s.Format, DefaultFormat)
	}
	if s.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", s.Theme, DefaultTheme)
	}
}

func TestSettings_PersistAcrossLoads(t *testing.T) {
	store := OpenStore(t.TempDir())

	s := LoadSettings(store)
	if err := s.SetCurrency("EUR"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFormat("xml"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTheme("dark"); err != nil {
		t.Fatal(err)
	}

	reloaded := LoadSettings(store)
	if reloaded.Currency != "EUR" || reloaded.Format != FormatXML || reloaded.Theme != ThemeDark {
		t.Errorf("reloaded settings differ: %+v", reloaded)
	}
}

func TestSettings_SettersValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.SetCurrency("GBP"); err == nil {
		t.Errorf("SetCurrency(GBP) expected an error")
	}
	if err := s.SetFormat("yaml"); err == nil {
		t.Errorf("SetFormat(yaml) expected an error")
	}
	if err := s.SetTheme("sepia"); err == nil {
		t.Errorf("SetTheme(sepia) expected an error")
	}
	// failed sets leave the settings untouched
	if s.Currency != DefaultCurrency || s.Format != DefaultFormat || s.Theme != DefaultTheme {
		t.Errorf("failed setters mutated the settings: %+v", s)
	}
}

func TestSettings_InvalidSlotFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "currency"), []byte("DOGE\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "format"), []byte("xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := LoadSettings(OpenStore(dir))
	// the corrupt slot falls back, the valid one is honored
	if s.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want fallback %q", s.Currency, DefaultCurrency)
	}
	if s.Format != FormatXML {
		t.Errorf("Format = %q, want %q", s.Format, FormatXML)
	}
}
