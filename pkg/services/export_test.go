package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func localCatalog(t *testing.T) *data.Catalog {
	dir := t.TempDir()
	page := func(name string) string {
		path := filepath.Join(dir, name)
		writePNG(t, path)
		return path
	}

	return &data.Catalog{Titles: []data.Title{{
		ID:   1,
		Name: "Local",
		Chapters: []data.Chapter{
			{ID: 1, Label: "Chapter 1", Pages: data.Pages{page("1-1.png"), page("1-2.png")}},
			{ID: 2, Label: "Chapter 2", Locked: true, Code: "LOCAL2", Pages: data.Pages{page("2-1.png")}},
			{ID: 3, Label: "Chapter 3"},
		},
	}}}
}

func TestExportableChapters(t *testing.T) {
	c := NewMangaController(localCatalog(t), data.NewMemoryStore())
	defer c.Close()

	chapters, err := c.ExportableChapters(1)
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	assert.Equal(t, 1, chapters[0].ID)

	_, err = c.Redeem("local2")
	require.NoError(t, err)
	chapters, err = c.ExportableChapters(1)
	require.NoError(t, err)
	assert.Len(t, chapters, 2)

	_, err = c.ExportableChapters(5)
	assert.Error(t, err)
}

func TestExportTitle(t *testing.T) {
	c := NewMangaController(localCatalog(t), data.NewMemoryStore())
	defer c.Close()

	var pages atomic.Int32
	out := t.TempDir()
	path, err := c.ExportTitle(context.Background(), 1, out, func() { pages.Add(1) })
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "Local.epub"), path)
	assert.FileExists(t, path)
	assert.Equal(t, int32(2), pages.Load())
}

func TestExportTitleMissingPage(t *testing.T) {
	catalog := localCatalog(t)
	catalog.Titles[0].Chapters[0].Pages[1] = filepath.Join(t.TempDir(), "gone.png")

	c := NewMangaController(catalog, data.NewMemoryStore())
	defer c.Close()

	_, err := c.ExportTitle(context.Background(), 1, t.TempDir(), nil)
	var loadErr *ImageLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Key.Page)
}

func TestImageExt(t *testing.T) {
	assert.Equal(t, ".png", imageExt("https://x/1.PNG?sig=1", ""))
	assert.Equal(t, ".webp", imageExt("https://x/page", "image/webp"))
	assert.Equal(t, ".jpg", imageExt("https://x/page", "application/octet-stream"))
}
