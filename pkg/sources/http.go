package sources

import (
	"context"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/utils"
)

// HTTPSource fetches the catalog document from a URL.
type HTTPSource struct {
	api *utils.API
	url string
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{api: utils.NewAPI(""), url: url}
}

func (h *HTTPSource) Name() string {
	return h.url
}

func (h *HTTPSource) Load(ctx context.Context) (*data.Catalog, error) {
	var catalog data.Catalog
	if err := h.api.Get(ctx, h.url, nil, &catalog); err != nil {
		return nil, &LoadError{Source: h.url, Err: err}
	}
	if catalog.Titles == nil {
		return nil, &LoadError{Source: h.url, Err: errMissingMangas}
	}
	return &catalog, nil
}
