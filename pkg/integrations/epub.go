package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/mangareader/pkg/data"
)

// ChapterImages pairs a chapter with its page images on disk, in reading
// order.
type ChapterImages struct {
	Chapter *data.Chapter
	Files   []string
}

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// Build compiles the given chapters of a title into one EPUB and returns
// its path. Chapters keep the order they are passed in.
func (b *EPubBuilder) Build(title *data.Title, chapters []ChapterImages) (string, error) {
	if len(chapters) == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	if title.Author != "" {
		e.SetAuthor(title.Author)
	}
	if title.Description != "" {
		e.SetDescription(title.Description)
	}
	e.SetLang("en")

	for _, ch := range chapters {
		if err := b.addChapter(e, ch); err != nil {
			return "", fmt.Errorf("failed to add %s: %w", ch.Chapter.DisplayName(), err)
		}
	}

	outputPath := filepath.Join(b.outputDir, sanitizeFilename(title.Name)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func (b *EPubBuilder) addChapter(e *epub.Epub, ch ChapterImages) error {
	if len(ch.Files) == 0 {
		return fmt.Errorf("no images for chapter")
	}

	heading := ch.Chapter.DisplayName()

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(heading)))

	for i, path := range ch.Files {
		if !isImageFile(path) {
			return fmt.Errorf("not an image: %s", filepath.Base(path))
		}
		name := fmt.Sprintf("c%03d_p%03d%s", ch.Chapter.ID, i+1, strings.ToLower(filepath.Ext(path)))
		internalPath, err := e.AddImage(path, name)
		if err != nil {
			return fmt.Errorf("failed to add image %s: %w", filepath.Base(path), err)
		}

		body.WriteString(fmt.Sprintf(
			`<div class="page"><img src="%s" alt="Page %d" style="width:100%%;height:auto;"/></div>%s`,
			internalPath, i+1, "\n",
		))
	}

	if _, err := e.AddSection(body.String(), heading, "", ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	return nil
}

func isImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}

// sanitizeFilename removes characters that are invalid in filenames.
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		return "untitled"
	}
	return result
}
