package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/mangareader/pkg/data"
)

// Source produces the catalog. It is called once at startup.
type Source interface {
	Name() string
	Load(ctx context.Context) (*data.Catalog, error)
}

// LoadError reports that the catalog could not be fetched or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadOrFallback loads and validates the catalog from src. On any failure
// it returns the built-in fallback catalog together with the *LoadError, so
// the caller can tell the user once and carry on.
func LoadOrFallback(ctx context.Context, src Source) (*data.Catalog, error) {
	catalog, err := src.Load(ctx)
	if err == nil {
		err = catalog.Validate()
	}
	if err == nil {
		return catalog, nil
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		loadErr = &LoadError{Source: src.Name(), Err: err}
	}
	return data.FallbackCatalog(), loadErr
}

// FromLocation picks a source for a catalog location: http(s) URLs are
// fetched, directories are scanned, anything else is read as a JSON file.
func FromLocation(location string, isDir bool) Source {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location)
	case isDir:
		return NewDirectorySource(location, "")
	default:
		return NewFileSource(location)
	}
}
