package sources

import (
	"context"
	"errors"
	"os"

	"github.com/kerbaras/mangareader/pkg/data"
)

var errMissingMangas = errors.New("catalog has no \"mangas\" list")

// FileSource reads the catalog document from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string {
	return f.path
}

func (f *FileSource) Load(_ context.Context) (*data.Catalog, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, &LoadError{Source: f.path, Err: err}
	}
	defer file.Close()

	catalog, err := data.DecodeCatalog(file)
	if err != nil {
		return nil, &LoadError{Source: f.path, Err: err}
	}
	return catalog, nil
}
