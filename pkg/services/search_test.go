package services

import (
	"errors"
	"testing"

	"github.com/kerbaras/mangareader/pkg/reader"
	"github.com/kerbaras/mangareader/pkg/sources"
)

func TestFilterTitles(t *testing.T) {
	titles := testCatalog().Titles

	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2}},
		{"naru", []int{1}},
		{"NARUTO", []int{1}},
		{"kishimoto", []int{1}},
		{"oda", []int{2}},
		{"o", []int{1, 2}},
		{" naruto", nil},
		{"bleach", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FilterTitles(titles, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterTitles(%q) returned %d titles, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("FilterTitles(%q)[%d].ID = %d, want %d", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestErrorNotification(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&sources.LoadError{Source: "x", Err: errors.New("boom")}, "Failed to load manga data. Showing fallback data."},
		{&reader.LockedError{TitleID: 1, ChapterID: 2}, "This chapter is still locked!"},
		{&reader.EmptyPagesError{TitleID: 1, ChapterID: 2}, "No pages available for this chapter"},
		{&reader.NotFoundError{TitleID: 7}, "Not found: title 7 not found"},
		{ErrEmptyCode, "Please enter a code"},
		{&InvalidCodeError{Code: "X"}, "Invalid code. Please try again."},
		{errors.New("disk full"), "disk full"},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		n := ErrorNotification(tt.err)
		if n.Kind != NotifyError {
			t.Errorf("kind = %q, want error", n.Kind)
		}
		if n.Message != tt.want {
			t.Errorf("ErrorNotification(%v) = %q, want %q", tt.err, n.Message, tt.want)
		}
		if seen[n.ID] {
			t.Errorf("duplicate notification id %s", n.ID)
		}
		seen[n.ID] = true
	}
}
