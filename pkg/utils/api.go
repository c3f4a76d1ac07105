package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string) *API {
	return &API{client: http.DefaultClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// WithClient swaps the HTTP client, mainly for tests.
func (a *API) WithClient(client *http.Client) *API {
	a.client = client
	return a
}

func (a *API) do(ctx context.Context, path string, params url.Values, accept string) (*http.Response, error) {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return resp, nil
}

// Get fetches path and decodes the JSON body into v. Any non-2xx status is
// an error.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := a.do(ctx, path, params, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}

// GetBytes fetches path and returns the raw body with its content type.
func (a *API) GetBytes(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := a.do(ctx, path, nil, "*/*")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
