package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/kerbaras/mangareader/pkg/utils"
)

const (
	pageCacheLimit  = 64
	resultsCapacity = 100
)

// PageKey identifies a page slot in the reader.
type PageKey struct {
	TitleID   int
	ChapterID int
	Page      int
}

// PageResult is the outcome of one page load.
type PageResult struct {
	Key         PageKey
	Ref         string
	Data        []byte
	ContentType string
	Err         error
}

// ImageLoadError is a failed page load. It is never fatal; the reader shows
// a placeholder and offers a retry.
type ImageLoadError struct {
	Key PageKey
	Ref string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load page %d (%s): %v", e.Key.Page+1, e.Ref, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// PageLoader fetches page images in the background. Each Load is
// independent: results arrive on Results() in completion order and are
// never cancelled, so consumers must drop results for pages they no longer
// show.
type PageLoader struct {
	api       *utils.API
	semaphore chan struct{}
	results   chan PageResult
	done      chan struct{}
	closeOnce sync.Once

	mu    sync.Mutex
	cache map[string]PageResult
}

func NewPageLoader(concurrency int) *PageLoader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PageLoader{
		api:       utils.NewAPI(""),
		semaphore: make(chan struct{}, concurrency),
		results:   make(chan PageResult, resultsCapacity),
		done:      make(chan struct{}),
		cache:     make(map[string]PageResult),
	}
}

// WithClient swaps the HTTP client used for remote pages.
func (l *PageLoader) WithClient(client *http.Client) *PageLoader {
	l.api.WithClient(client)
	return l
}

// Results returns the channel page loads are delivered on.
func (l *PageLoader) Results() <-chan PageResult {
	return l.results
}

// Load starts fetching ref for key and returns immediately.
func (l *PageLoader) Load(key PageKey, ref string) {
	if cached, ok := l.cached(ref); ok {
		cached.Key = key
		go l.deliver(cached)
		return
	}

	go func() {
		select {
		case l.semaphore <- struct{}{}:
		case <-l.done:
			return
		}
		defer func() { <-l.semaphore }()

		data, contentType, err := l.Fetch(context.Background(), ref)
		result := PageResult{Key: key, Ref: ref, Data: data, ContentType: contentType}
		if err != nil {
			result.Err = &ImageLoadError{Key: key, Ref: ref, Err: err}
		} else {
			l.store(ref, result)
		}
		l.deliver(result)
	}()
}

// Retry forgets any cached copy and fetches ref again.
func (l *PageLoader) Retry(key PageKey, ref string) {
	l.mu.Lock()
	delete(l.cache, ref)
	l.mu.Unlock()
	l.Load(key, ref)
}

// Fetch reads a page synchronously. Remote references are fetched over
// HTTP; anything else is a local path (optionally file://).
func (l *PageLoader) Fetch(ctx context.Context, ref string) ([]byte, string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		data, contentType, err := l.api.GetBytes(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		return data, contentType, nil
	}

	data, err := os.ReadFile(strings.TrimPrefix(ref, "file://"))
	if err != nil {
		return nil, "", err
	}
	return data, http.DetectContentType(data), nil
}

func (l *PageLoader) deliver(r PageResult) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.results <- r:
	case <-l.done:
	}
}

func (l *PageLoader) cached(ref string) (PageResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.cache[ref]
	return r, ok
}

func (l *PageLoader) store(ref string, r PageResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.cache) >= pageCacheLimit {
		l.cache = make(map[string]PageResult)
	}
	l.cache[ref] = r
}

// Close stops pending deliveries. Loads still in flight finish and are
// discarded.
func (l *PageLoader) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}
