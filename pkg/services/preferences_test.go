package services

import (
	"testing"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/reader"
)

func TestPreferencesDefaults(t *testing.T) {
	prefs := NewPreferences(data.NewMemoryStore())

	if prefs.Theme() != ThemeLight {
		t.Errorf("Theme() = %q, want light", prefs.Theme())
	}
	if prefs.FitMode() != reader.FitWidth {
		t.Errorf("FitMode() = %q, want width", prefs.FitMode())
	}
	if prefs.Direction() != reader.LeftToRight {
		t.Errorf("Direction() = %q, want ltr", prefs.Direction())
	}
}

func TestPreferencesInvalidValues(t *testing.T) {
	store := data.NewMemoryStore()
	store.Set(KeyTheme, "solarized")
	store.Set(KeyImageFitMode, "stretch")
	store.Set(KeyReadingDirection, "ttb")

	prefs := NewPreferences(store)
	if prefs.Theme() != DefaultTheme {
		t.Errorf("invalid theme should read as default, got %q", prefs.Theme())
	}
	if prefs.FitMode() != DefaultFitMode {
		t.Errorf("invalid fit mode should read as default, got %q", prefs.FitMode())
	}
	if prefs.Direction() != DefaultDirection {
		t.Errorf("invalid direction should read as default, got %q", prefs.Direction())
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := data.NewMemoryStore()
	prefs := NewPreferences(store)

	if err := prefs.SetFitMode(reader.FitBoth); err != nil {
		t.Fatalf("SetFitMode() error = %v", err)
	}
	if err := prefs.SetDirection(reader.RightToLeft); err != nil {
		t.Fatalf("SetDirection() error = %v", err)
	}

	raw, _, _ := store.Get(KeyImageFitMode)
	if raw != "both" {
		t.Errorf("stored fit mode = %q, want both", raw)
	}

	again := NewPreferences(store)
	if again.FitMode() != reader.FitBoth {
		t.Errorf("FitMode() = %q, want both", again.FitMode())
	}
	if again.Direction() != reader.RightToLeft {
		t.Errorf("Direction() = %q, want rtl", again.Direction())
	}
}

func TestToggleTheme(t *testing.T) {
	prefs := NewPreferences(data.NewMemoryStore())

	for _, want := range []Theme{ThemeDark, ThemeLight, ThemeDark} {
		got, err := prefs.ToggleTheme()
		if err != nil {
			t.Fatalf("ToggleTheme() error = %v", err)
		}
		if got != want || prefs.Theme() != want {
			t.Errorf("ToggleTheme() = %q, want %q", got, want)
		}
	}
}

func TestParseTheme(t *testing.T) {
	if _, err := ParseTheme("dark"); err != nil {
		t.Errorf("ParseTheme(dark) error = %v", err)
	}
	if _, err := ParseTheme("Dark"); err == nil {
		t.Error("ParseTheme should be case sensitive")
	}
}
