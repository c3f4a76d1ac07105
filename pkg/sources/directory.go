package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kerbaras/mangareader/pkg/data"
)

const (
	pagePattern  = "*/*/*"
	imagePattern = "*.{jpg,jpeg,png,gif,webp}"
	infoFile     = "info.json"
)

// titleInfo is the optional info.json kept next to a title's chapter
// folders. Chapters listed in Codes start locked.
type titleInfo struct {
	Name        string            `json:"title"`
	Author      string            `json:"author"`
	Description string            `json:"description"`
	Status      data.TitleStatus  `json:"status"`
	Cover       string            `json:"cover"`
	Codes       map[string]string `json:"codes"`
}

// DirectorySource builds a catalog from a folder laid out as
// <root>/<title>/<chapter>/<page image>. Titles, chapters and pages are
// ordered by the first number in their names, then by name.
type DirectorySource struct {
	root    string
	baseURL string
}

// NewDirectorySource scans root. When baseURL is set, page references are
// baseURL joined with the slash path relative to root; otherwise they are
// absolute file paths.
func NewDirectorySource(root, baseURL string) *DirectorySource {
	return &DirectorySource{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (d *DirectorySource) Name() string {
	return d.root
}

func (d *DirectorySource) Load(_ context.Context) (*data.Catalog, error) {
	catalog, err := d.scan()
	if err != nil {
		return nil, &LoadError{Source: d.root, Err: err}
	}
	return catalog, nil
}

func (d *DirectorySource) scan() (*data.Catalog, error) {
	fsys := os.DirFS(d.root)
	matches, err := doublestar.Glob(fsys, pagePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", d.root, err)
	}

	// title dir -> chapter dir -> pages
	tree := make(map[string]map[string][]string)
	for _, m := range matches {
		ok, err := doublestar.Match(imagePattern, strings.ToLower(path.Base(m)))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		parts := strings.Split(m, "/")
		titleDir, chapterDir := parts[0], parts[1]
		if tree[titleDir] == nil {
			tree[titleDir] = make(map[string][]string)
		}
		tree[titleDir][chapterDir] = append(tree[titleDir][chapterDir], m)
	}

	if len(tree) == 0 {
		return nil, fmt.Errorf("no page images found under %s", d.root)
	}

	catalog := &data.Catalog{Titles: []data.Title{}}
	for i, titleDir := range sortedKeys(tree) {
		info, err := d.readInfo(titleDir)
		if err != nil {
			return nil, err
		}

		title := data.Title{
			ID:          i + 1,
			Name:        firstNonEmpty(info.Name, titleDir),
			Author:      info.Author,
			Description: info.Description,
			Status:      info.Status,
			Cover:       info.Cover,
		}
		if title.Status == "" {
			title.Status = data.StatusOngoing
		}

		chapters := tree[titleDir]
		for j, chapterDir := range sortedKeys(chapters) {
			pages := chapters[chapterDir]
			sort.Slice(pages, func(a, b int) bool { return naturalLess(pages[a], pages[b]) })

			id := j + 1
			code := info.Codes[strconv.Itoa(id)]
			ch := data.Chapter{
				ID:     id,
				Title:  chapterDir,
				Label:  fmt.Sprintf("Chapter %d", id),
				Locked: code != "",
				Code:   code,
				Pages:  make(data.Pages, len(pages)),
			}
			for k, p := range pages {
				ch.Pages[k] = d.pageRef(p)
			}
			title.Chapters = append(title.Chapters, ch)
		}
		catalog.Titles = append(catalog.Titles, title)
	}

	return catalog, nil
}

func (d *DirectorySource) readInfo(titleDir string) (titleInfo, error) {
	var info titleInfo
	raw, err := os.ReadFile(filepath.Join(d.root, titleDir, infoFile))
	if os.IsNotExist(err) {
		return info, nil
	}
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return info, fmt.Errorf("%s/%s: %w", titleDir, infoFile, err)
	}
	return info, nil
}

func (d *DirectorySource) pageRef(rel string) string {
	if d.baseURL != "" {
		return d.baseURL + "/" + rel
	}
	abs, err := filepath.Abs(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil {
		return filepath.Join(d.root, filepath.FromSlash(rel))
	}
	return abs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })
	return keys
}

// naturalLess orders "ch2" before "ch10" by comparing the first run of
// digits in each base name.
func naturalLess(a, b string) bool {
	na, okA := leadingNumber(path.Base(a))
	nb, okB := leadingNumber(path.Base(b))
	if okA && okB && na != nb {
		return na < nb
	}
	if okA != okB {
		return okA
	}
	return a < b
}

func leadingNumber(s string) (int, bool) {
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	return n, err == nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
