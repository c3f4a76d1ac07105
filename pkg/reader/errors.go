package reader

import "fmt"

// NotFoundError reports an unknown title or chapter id.
type NotFoundError struct {
	TitleID   int
	ChapterID int // 0 when the title itself is unknown
}

func (e *NotFoundError) Error() string {
	if e.ChapterID == 0 {
		return fmt.Sprintf("title %d not found", e.TitleID)
	}
	return fmt.Sprintf("chapter %d of title %d not found", e.ChapterID, e.TitleID)
}

// LockedError reports an attempt to read a chapter that is still locked.
type LockedError struct {
	TitleID   int
	ChapterID int
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("chapter %d of title %d is still locked", e.ChapterID, e.TitleID)
}

// EmptyPagesError reports a chapter with nothing to show.
type EmptyPagesError struct {
	TitleID   int
	ChapterID int
}

func (e *EmptyPagesError) Error() string {
	return fmt.Sprintf("no pages available for chapter %d of title %d", e.ChapterID, e.TitleID)
}
