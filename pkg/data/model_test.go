package data

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "mangas": [
    {
      "id": 1,
      "title": "Naruto",
      "author": "Masashi Kishimoto",
      "description": "A young ninja.",
      "cover": "covers/naruto.jpg",
      "status": "Ongoing",
      "chaptersList": [
        {"id": 1, "title": "Uzumaki Naruto", "number": "Chapter 1", "locked": false,
         "pages": ["n/1/1.jpg", "n/1/2.jpg"], "date": "2024-01-01", "code": null},
        {"id": 2, "title": "Konohamaru", "number": "Chapter 2", "locked": true,
         "pages": {"2": "n/2/2.jpg", "10": "n/2/10.jpg", "1": "n/2/1.jpg"}, "date": "2024-01-08", "code": "NARUTO002"}
      ]
    }
  ]
}`

func TestDecodeCatalog(t *testing.T) {
	catalog, err := DecodeCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, catalog.Titles, 1)

	title := catalog.Titles[0]
	assert.Equal(t, "Naruto", title.Name)
	assert.Equal(t, StatusOngoing, title.Status)
	require.Len(t, title.Chapters, 2)

	assert.Empty(t, title.Chapters[0].Code)
	assert.False(t, title.Chapters[0].HasCode())
	assert.Equal(t, "NARUTO002", title.Chapters[1].Code)
	assert.Equal(t, Pages{"n/2/1.jpg", "n/2/2.jpg", "n/2/10.jpg"}, title.Chapters[1].Pages)
	assert.NoError(t, catalog.Validate())
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "<html>"},
		{"missing mangas", `{"titles": []}`},
		{"bad status", `{"mangas": [{"id": 1, "status": "hiatus"}]}`},
		{"bad pages", `{"mangas": [{"id": 1, "chaptersList": [{"id": 1, "pages": 7}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestPagesFromKeyedObject(t *testing.T) {
	var pages Pages
	require.NoError(t, json.Unmarshal([]byte(`{ "2": "url2", "1": "url1" }`), &pages))
	assert.Equal(t, Pages{"url1", "url2"}, pages)
}

func TestPagesNonNumericKeysSortLast(t *testing.T) {
	pages := PagesFromMap(map[string]string{
		"extra": "e.jpg",
		"3":     "c.jpg",
		"cover": "cover.jpg",
		"1":     "a.jpg",
	})
	assert.Equal(t, Pages{"a.jpg", "c.jpg", "e.jpg", "cover.jpg"}, pages)
}

func TestPagesNull(t *testing.T) {
	var ch Chapter
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "pages": null}`), &ch))
	assert.Empty(t, ch.Pages)
}

func TestCatalogLookup(t *testing.T) {
	catalog := FallbackCatalog()

	assert.NotNil(t, catalog.Title(1))
	assert.Nil(t, catalog.Title(2))
	assert.NotNil(t, catalog.Chapter(1, 1))
	assert.Nil(t, catalog.Chapter(1, 2))
	assert.Nil(t, catalog.Chapter(9, 1))

	var nilCatalog *Catalog
	assert.Nil(t, nilCatalog.Title(1))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"fallback", *FallbackCatalog(), false},
		{"zero title id", Catalog{Titles: []Title{{ID: 0}}}, true},
		{"duplicate title id", Catalog{Titles: []Title{{ID: 1}, {ID: 1}}}, true},
		{"gap in chapters", Catalog{Titles: []Title{{ID: 1, Chapters: []Chapter{{ID: 1}, {ID: 3}}}}}, true},
		{"duplicate chapter", Catalog{Titles: []Title{{ID: 1, Chapters: []Chapter{{ID: 1}, {ID: 1}}}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChapterDisplayName(t *testing.T) {
	ch := Chapter{ID: 3, Title: "The Storm", Label: "Chapter 3"}
	if got := ch.DisplayName(); got != "Chapter 3: The Storm" {
		t.Errorf("Expected 'Chapter 3: The Storm', got '%s'", got)
	}

	ch = Chapter{ID: 4}
	if got := ch.DisplayName(); got != "Chapter 4" {
		t.Errorf("Expected 'Chapter 4', got '%s'", got)
	}
}

func TestCatalogEncodeRoundTrip(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FallbackCatalog().Encode(&b))

	decoded, err := DecodeCatalog(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, FallbackCatalog(), decoded)
}
