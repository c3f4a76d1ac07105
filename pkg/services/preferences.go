package services

import (
	"fmt"
	"log"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/reader"
)

const (
	KeyTheme            = "theme"
	KeyImageFitMode     = "imageFitMode"
	KeyReadingDirection = "readingDirection"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("invalid theme %q: must be dark or light", s)
}

const (
	DefaultTheme     = ThemeLight
	DefaultFitMode   = reader.FitWidth
	DefaultDirection = reader.LeftToRight
)

// Preferences persists theme, fit mode and reading direction. Values that
// are missing or unrecognised read back as the defaults.
type Preferences struct {
	store data.Store
}

func NewPreferences(store data.Store) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) get(key string) string {
	v, _, err := p.store.Get(key)
	if err != nil {
		log.Printf("failed to read preference %s: %v", key, err)
		return ""
	}
	return v
}

func (p *Preferences) Theme() Theme {
	t, err := ParseTheme(p.get(KeyTheme))
	if err != nil {
		return DefaultTheme
	}
	return t
}

func (p *Preferences) SetTheme(t Theme) error {
	return p.store.Set(KeyTheme, string(t))
}

// ToggleTheme flips between dark and light and returns the new theme.
func (p *Preferences) ToggleTheme() (Theme, error) {
	next := ThemeDark
	if p.Theme() == ThemeDark {
		next = ThemeLight
	}
	return next, p.SetTheme(next)
}

func (p *Preferences) FitMode() reader.FitMode {
	m, err := reader.ParseFitMode(p.get(KeyImageFitMode))
	if err != nil {
		return DefaultFitMode
	}
	return m
}

func (p *Preferences) SetFitMode(m reader.FitMode) error {
	return p.store.Set(KeyImageFitMode, string(m))
}

func (p *Preferences) Direction() reader.Direction {
	d, err := reader.ParseDirection(p.get(KeyReadingDirection))
	if err != nil {
		return DefaultDirection
	}
	return d
}

func (p *Preferences) SetDirection(d reader.Direction) error {
	return p.store.Set(KeyReadingDirection, string(d))
}
