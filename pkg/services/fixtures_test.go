package services

import (
	"github.com/kerbaras/mangareader/pkg/data"
)

// testCatalog has two titles. Title 1 mirrors the lock scenario: chapter 1
// is free, chapter 2 needs ABC123, chapter 3 has no code.
func testCatalog() *data.Catalog {
	return &data.Catalog{Titles: []data.Title{
		{
			ID:     1,
			Name:   "Naruto",
			Author: "Masashi Kishimoto",
			Chapters: []data.Chapter{
				{ID: 1, Title: "Uzumaki Naruto", Label: "Chapter 1", Pages: data.Pages{"n/1/1.jpg", "n/1/2.jpg"}},
				{ID: 2, Title: "Konohamaru", Label: "Chapter 2", Locked: true, Code: "ABC123", Pages: data.Pages{"n/2/1.jpg"}},
				{ID: 3, Title: "Sasuke", Label: "Chapter 3", Locked: true, Pages: data.Pages{"n/3/1.jpg"}},
			},
		},
		{
			ID:     2,
			Name:   "One Piece",
			Author: "Eiichiro Oda",
			Chapters: []data.Chapter{
				{ID: 1, Title: "Romance Dawn", Label: "Chapter 1", Pages: data.Pages{"op/1/1.jpg"}},
				{ID: 2, Title: "Buggy", Label: "Chapter 2", Locked: true, Code: "NARUTO002", Pages: data.Pages{"op/2/1.jpg"}},
				{ID: 3, Title: "Empty", Label: "Chapter 3"},
			},
		},
	}}
}
