package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/integrations"
	"github.com/kerbaras/mangareader/pkg/reader"
)

// ExportableChapters lists the chapters of a title that are unlocked and
// have pages, in catalog order.
func (c *MangaController) ExportableChapters(titleID int) ([]*data.Chapter, error) {
	title := c.catalog.Title(titleID)
	if title == nil {
		return nil, &reader.NotFoundError{TitleID: titleID}
	}

	var out []*data.Chapter
	for i := range title.Chapters {
		ch := &title.Chapters[i]
		if len(ch.Pages) > 0 && c.IsUnlocked(titleID, ch.ID) {
			out = append(out, ch)
		}
	}
	return out, nil
}

// ExportTitle writes every readable chapter of a title into one EPUB under
// outputDir. onPage, when set, is called after each page is fetched.
func (c *MangaController) ExportTitle(ctx context.Context, titleID int, outputDir string, onPage func()) (string, error) {
	chapters, err := c.ExportableChapters(titleID)
	if err != nil {
		return "", err
	}
	if len(chapters) == 0 {
		return "", fmt.Errorf("no unlocked chapters to export")
	}

	workDir, err := os.MkdirTemp("", "mangareader-export-*")
	if err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	images := make([]integrations.ChapterImages, 0, len(chapters))
	for _, ch := range chapters {
		files := make([]string, 0, len(ch.Pages))
		for i, ref := range ch.Pages {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			raw, contentType, err := c.pages.Fetch(ctx, ref)
			if err != nil {
				return "", &ImageLoadError{Key: PageKey{TitleID: titleID, ChapterID: ch.ID, Page: i}, Ref: ref, Err: err}
			}

			path := filepath.Join(workDir, fmt.Sprintf("%d-%d%s", ch.ID, i+1, imageExt(ref, contentType)))
			if err := os.WriteFile(path, raw, 0644); err != nil {
				return "", fmt.Errorf("failed to write page: %w", err)
			}
			files = append(files, path)

			if onPage != nil {
				onPage()
			}
		}
		images = append(images, integrations.ChapterImages{Chapter: ch, Files: files})
	}

	return integrations.NewEPubBuilder(outputDir).Build(c.catalog.Title(titleID), images)
}

// imageExt prefers the extension of the reference and falls back to the
// content type.
func imageExt(ref, contentType string) string {
	ext := strings.ToLower(filepath.Ext(strings.SplitN(ref, "?", 2)[0]))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		for _, e := range exts {
			if e == ".jpg" || e == ".png" || e == ".gif" || e == ".webp" {
				return e
			}
		}
	}
	return ".jpg"
}
