package reader

import (
	"errors"
	"testing"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLocks unlocks chapters with Locked=false plus anything in extra.
type fakeLocks struct {
	cat   *data.Catalog
	extra map[int]bool
	err   error
}

func (f *fakeLocks) IsUnlocked(titleID, chapterID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	ch := f.cat.Chapter(titleID, chapterID)
	return ch != nil && (!ch.Locked || f.extra[chapterID]), nil
}

func testCatalog() *data.Catalog {
	return &data.Catalog{Titles: []data.Title{
		{ID: 1, Name: "One", Chapters: []data.Chapter{
			{ID: 1, Pages: data.Pages{"1a", "1b", "1c"}},
			{ID: 2, Locked: true, Code: "ABC123", Pages: data.Pages{"2a", "2b"}},
			{ID: 3, Pages: data.Pages{"3a"}},
			{ID: 4},
		}},
	}}
}

func TestInitialState(t *testing.T) {
	s := NewState(FitHeight, RightToLeft)
	assert.Equal(t, ViewCatalog, s.View)
	assert.Equal(t, "Catalog", s.String())
}

func TestOpenTitle(t *testing.T) {
	cat := testCatalog()
	s := NewState(FitWidth, LeftToRight)

	next, err := OpenTitle(cat, s, 99)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, s, next, "unknown title keeps the catalog state")

	next, err = OpenTitle(cat, s, 1)
	require.NoError(t, err)
	assert.Equal(t, ViewChapterList, next.View)
	assert.Equal(t, "ChapterList(1)", next.String())

	again, err := OpenTitle(cat, next, 1)
	assert.NoError(t, err)
	assert.Equal(t, next, again, "openTitle outside the catalog is ignored")
}

func TestOpenChapterGuards(t *testing.T) {
	cat := testCatalog()
	locks := &fakeLocks{cat: cat}
	list, err := OpenTitle(cat, NewState(FitWidth, LeftToRight), 1)
	require.NoError(t, err)

	tests := []struct {
		name      string
		chapterID int
		check     func(error) bool
	}{
		{"unknown", 9, func(err error) bool { var e *NotFoundError; return errors.As(err, &e) }},
		{"locked", 2, func(err error) bool { var e *LockedError; return errors.As(err, &e) }},
		{"no pages", 4, func(err error) bool { var e *EmptyPagesError; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := OpenChapter(cat, locks, list, tt.chapterID)
			assert.True(t, tt.check(err), "unexpected error %v", err)
			assert.Equal(t, list, next)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("disk gone")
		next, err := OpenChapter(cat, &fakeLocks{cat: cat, err: boom}, list, 1)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, list, next)
	})
}

func TestLockedThenUnlockedScenario(t *testing.T) {
	cat := &data.Catalog{Titles: []data.Title{{ID: 1, Chapters: []data.Chapter{
		{ID: 1, Locked: false, Pages: data.Pages{"p"}},
		{ID: 2, Locked: true, Code: "ABC123", Pages: data.Pages{"p"}},
	}}}}
	locks := &fakeLocks{cat: cat, extra: map[int]bool{}}

	list, _ := OpenTitle(cat, NewState(FitWidth, LeftToRight), 1)
	s, err := OpenChapter(cat, locks, list, 2)
	var locked *LockedError
	require.True(t, errors.As(err, &locked))
	assert.Equal(t, "ChapterList(1)", s.String())

	locks.extra[2] = true
	s, err = OpenChapter(cat, locks, list, 2)
	require.NoError(t, err)
	assert.Equal(t, "Reader(1, 2)", s.String())
}

func TestBack(t *testing.T) {
	cat := testCatalog()
	locks := &fakeLocks{cat: cat}

	catalog := NewState(FitBoth, RightToLeft)
	list, _ := OpenTitle(cat, catalog, 1)
	rd, err := OpenChapter(cat, locks, list, 1)
	require.NoError(t, err)

	assert.Equal(t, list, Back(rd))
	assert.Equal(t, catalog, Back(list))
	assert.Equal(t, catalog, Back(catalog))
}

func TestChapterNavigation(t *testing.T) {
	cat := testCatalog()
	locks := &fakeLocks{cat: cat, extra: map[int]bool{2: true}}

	list, _ := OpenTitle(cat, NewState(FitHeight, RightToLeft), 1)
	s, err := OpenChapter(cat, locks, list, 1)
	require.NoError(t, err)

	s = NextPage(NextPage(s))
	s = Zoom(s, 0.5)
	require.Equal(t, 2, s.Cursor.Page)

	s, err = NextChapter(cat, locks, s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ChapterID)
	assert.Equal(t, 0, s.Cursor.Page)
	assert.Equal(t, 1.0, s.Cursor.Zoom)
	assert.Equal(t, 2, s.Cursor.PageCount)
	assert.Equal(t, FitHeight, s.Cursor.Fit)
	assert.Equal(t, RightToLeft, s.Cursor.Direction)

	s, err = PreviousChapter(cat, locks, s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ChapterID)

	first, err := PreviousChapter(cat, locks, s)
	assert.NoError(t, err)
	assert.Equal(t, s, first, "previous from chapter 1 is a no-op")
}

func TestNextChapterFromLast(t *testing.T) {
	cat := &data.Catalog{Titles: []data.Title{{ID: 5, Chapters: []data.Chapter{
		{ID: 1, Pages: data.Pages{"a"}},
		{ID: 2, Pages: data.Pages{"b", "c"}},
	}}}}
	locks := &fakeLocks{cat: cat}

	list, _ := OpenTitle(cat, NewState(FitWidth, LeftToRight), 5)
	s, err := OpenChapter(cat, locks, list, 2)
	require.NoError(t, err)
	s = NextPage(s)

	next, err := NextChapter(cat, locks, s)
	assert.NoError(t, err)
	assert.Equal(t, s, next)
	assert.Equal(t, 1, next.Cursor.Page)
}

func TestNextChapterIntoEmptyChapter(t *testing.T) {
	cat := testCatalog()
	locks := &fakeLocks{cat: cat}

	list, _ := OpenTitle(cat, NewState(FitWidth, LeftToRight), 1)
	s, err := OpenChapter(cat, locks, list, 3)
	require.NoError(t, err)

	next, err := NextChapter(cat, locks, s)
	var empty *EmptyPagesError
	assert.True(t, errors.As(err, &empty))
	assert.Equal(t, s, next)
}

func TestCursorOpsOutsideReader(t *testing.T) {
	s := NewState(FitWidth, LeftToRight)

	assert.Equal(t, s, NextPage(s))
	assert.Equal(t, s, PreviousPage(s))
	assert.Equal(t, s, StepPage(s, ArrowRight))
	assert.Equal(t, s, Zoom(s, 1))
	assert.Equal(t, s, ResetZoom(s))
	assert.Equal(t, s, SetFit(s, FitBoth))
	assert.Equal(t, s, SetDirection(s, RightToLeft))

	next, err := NextChapter(testCatalog(), &fakeLocks{cat: testCatalog()}, s)
	assert.NoError(t, err)
	assert.Equal(t, s, next)

	next, err = OpenChapter(testCatalog(), &fakeLocks{cat: testCatalog()}, s, 1)
	assert.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestSetFitAndDirectionInReader(t *testing.T) {
	cat := testCatalog()
	locks := &fakeLocks{cat: cat}
	list, _ := OpenTitle(cat, NewState(FitWidth, LeftToRight), 1)
	s, _ := OpenChapter(cat, locks, list, 1)

	s = SetFit(s, FitBoth)
	s = SetDirection(s, RightToLeft)
	assert.Equal(t, FitBoth, s.Cursor.Fit)
	assert.Equal(t, RightToLeft, s.Cursor.Direction)

	s = StepPage(s, ArrowLeft)
	assert.Equal(t, 1, s.Cursor.Page)

	list = Back(s)
	assert.Equal(t, FitBoth, list.Fit)
	assert.Equal(t, RightToLeft, list.Direction)
}
