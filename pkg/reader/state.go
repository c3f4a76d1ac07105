// Package reader holds the navigation state machine and the page cursor.
//
// Everything here is pure: transitions take a State and return the next
// one, so the whole flow can be exercised without a screen.
package reader

import (
	"fmt"

	"github.com/kerbaras/mangareader/pkg/data"
)

type View int

const (
	ViewCatalog View = iota
	ViewChapterList
	ViewReader
)

func (v View) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewChapterList:
		return "chapters"
	case ViewReader:
		return "reader"
	default:
		return "unknown"
	}
}

// LockChecker answers whether a chapter may be opened.
type LockChecker interface {
	IsUnlocked(titleID, chapterID int) (bool, error)
}

// State is the current view plus the selected title, chapter and cursor.
// TitleID is set in ChapterList and Reader; ChapterID and Cursor only in
// Reader.
type State struct {
	View      View
	TitleID   int
	ChapterID int
	Cursor    Cursor

	// Fit and Direction survive chapter changes and view changes; the
	// cursor picks them up whenever a chapter is opened.
	Fit       FitMode
	Direction Direction
}

// NewState returns the initial Catalog state with the given preferences.
func NewState(fit FitMode, dir Direction) State {
	return State{View: ViewCatalog, Fit: fit, Direction: dir}
}

func (s State) String() string {
	switch s.View {
	case ViewChapterList:
		return fmt.Sprintf("ChapterList(%d)", s.TitleID)
	case ViewReader:
		return fmt.Sprintf("Reader(%d, %d)", s.TitleID, s.ChapterID)
	default:
		return "Catalog"
	}
}

// OpenTitle moves Catalog -> ChapterList(titleID).
func OpenTitle(cat *data.Catalog, s State, titleID int) (State, error) {
	if s.View != ViewCatalog {
		return s, nil
	}
	if cat.Title(titleID) == nil {
		return s, &NotFoundError{TitleID: titleID}
	}
	return State{View: ViewChapterList, TitleID: titleID, Fit: s.Fit, Direction: s.Direction}, nil
}

// OpenChapter moves ChapterList(t) -> Reader(t, chapterID). The chapter
// must exist, be unlocked and have at least one page.
func OpenChapter(cat *data.Catalog, locks LockChecker, s State, chapterID int) (State, error) {
	if s.View != ViewChapterList {
		return s, nil
	}
	return enterChapter(cat, locks, s, chapterID)
}

// Back moves Reader(t, c) -> ChapterList(t) and ChapterList(t) -> Catalog.
func Back(s State) State {
	switch s.View {
	case ViewReader:
		return State{View: ViewChapterList, TitleID: s.TitleID, Fit: s.Fit, Direction: s.Direction}
	case ViewChapterList:
		return State{View: ViewCatalog, Fit: s.Fit, Direction: s.Direction}
	default:
		return s
	}
}

// NextChapter moves Reader(t, c) -> Reader(t, c+1) when c+1 exists. The
// target chapter is checked exactly like OpenChapter.
func NextChapter(cat *data.Catalog, locks LockChecker, s State) (State, error) {
	return adjacentChapter(cat, locks, s, +1)
}

// PreviousChapter moves Reader(t, c) -> Reader(t, c-1) when c > 1.
func PreviousChapter(cat *data.Catalog, locks LockChecker, s State) (State, error) {
	return adjacentChapter(cat, locks, s, -1)
}

func adjacentChapter(cat *data.Catalog, locks LockChecker, s State, delta int) (State, error) {
	if s.View != ViewReader {
		return s, nil
	}
	title := cat.Title(s.TitleID)
	if title == nil {
		return s, &NotFoundError{TitleID: s.TitleID}
	}
	target := s.ChapterID + delta
	if target < 1 || target > len(title.Chapters) {
		return s, nil
	}
	return enterChapter(cat, locks, s, target)
}

func enterChapter(cat *data.Catalog, locks LockChecker, s State, chapterID int) (State, error) {
	ch := cat.Chapter(s.TitleID, chapterID)
	if ch == nil {
		return s, &NotFoundError{TitleID: s.TitleID, ChapterID: chapterID}
	}

	unlocked, err := locks.IsUnlocked(s.TitleID, chapterID)
	if err != nil {
		return s, err
	}
	if !unlocked {
		return s, &LockedError{TitleID: s.TitleID, ChapterID: chapterID}
	}
	if len(ch.Pages) == 0 {
		return s, &EmptyPagesError{TitleID: s.TitleID, ChapterID: chapterID}
	}

	return State{
		View:      ViewReader,
		TitleID:   s.TitleID,
		ChapterID: chapterID,
		Cursor:    NewCursor(len(ch.Pages), s.Fit, s.Direction),
		Fit:       s.Fit,
		Direction: s.Direction,
	}, nil
}

// Cursor operations. All of them leave non-Reader states untouched.

func NextPage(s State) State {
	if s.View == ViewReader {
		s.Cursor = s.Cursor.Next()
	}
	return s
}

func PreviousPage(s State) State {
	if s.View == ViewReader {
		s.Cursor = s.Cursor.Previous()
	}
	return s
}

// StepPage applies a physical arrow key according to the reading direction.
func StepPage(s State, a Arrow) State {
	if s.View == ViewReader {
		s.Cursor = s.Cursor.Step(a)
	}
	return s
}

func Zoom(s State, delta float64) State {
	if s.View == ViewReader {
		s.Cursor = s.Cursor.ZoomBy(delta)
	}
	return s
}

func ResetZoom(s State) State {
	if s.View == ViewReader {
		s.Cursor = s.Cursor.ResetZoom()
	}
	return s
}

// SetFit and SetDirection also update the remembered preference so the
// next chapter opens with it.
func SetFit(s State, m FitMode) State {
	if s.View == ViewReader {
		s.Fit = m
		s.Cursor = s.Cursor.WithFit(m)
	}
	return s
}

func SetDirection(s State, d Direction) State {
	if s.View == ViewReader {
		s.Direction = d
		s.Cursor = s.Cursor.WithDirection(d)
	}
	return s
}
