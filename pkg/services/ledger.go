package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/reader"
)

// LedgerKey is the store key holding the unlocked chapter ids of a title.
func LedgerKey(titleID int) string {
	return fmt.Sprintf("unlockedChapters_%d", titleID)
}

// Ledger records which chapters the user has unlocked. Every call goes to
// the store; nothing is cached so another process writing the same store is
// picked up on the next read (last writer wins).
type Ledger struct {
	store   data.Store
	catalog *data.Catalog
}

func NewLedger(store data.Store, catalog *data.Catalog) *Ledger {
	return &Ledger{store: store, catalog: catalog}
}

// Unlocked returns the persisted set for a title in insertion order. A
// value that does not parse is treated as empty.
func (l *Ledger) Unlocked(titleID int) ([]int, error) {
	raw, ok, err := l.store.Get(LedgerKey(titleID))
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []int{}, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("ignoring corrupt %s: %v", LedgerKey(titleID), err)
		return []int{}, nil
	}
	return ids, nil
}

// IsUnlocked is true when the chapter is not locked by default or its id
// is in the persisted set.
func (l *Ledger) IsUnlocked(titleID, chapterID int) (bool, error) {
	ch := l.catalog.Chapter(titleID, chapterID)
	if ch == nil {
		return false, &reader.NotFoundError{TitleID: titleID, ChapterID: chapterID}
	}
	if !ch.Locked {
		return true, nil
	}

	ids, err := l.Unlocked(titleID)
	if err != nil {
		return false, err
	}
	return contains(ids, chapterID), nil
}

// Unlock adds chapterID to the title's set and persists it. Unlocking an
// already unlocked chapter writes nothing.
func (l *Ledger) Unlock(titleID, chapterID int) error {
	if l.catalog.Chapter(titleID, chapterID) == nil {
		return &reader.NotFoundError{TitleID: titleID, ChapterID: chapterID}
	}

	ids, err := l.Unlocked(titleID)
	if err != nil {
		return err
	}
	if contains(ids, chapterID) {
		return nil
	}

	raw, err := json.Marshal(append(ids, chapterID))
	if err != nil {
		return fmt.Errorf("failed to encode unlocked chapters: %w", err)
	}
	return l.store.Set(LedgerKey(titleID), string(raw))
}

// CountUnlocked counts the title's chapters that IsUnlocked accepts.
func (l *Ledger) CountUnlocked(titleID int) (int, error) {
	title := l.catalog.Title(titleID)
	if title == nil {
		return 0, &reader.NotFoundError{TitleID: titleID}
	}

	ids, err := l.Unlocked(titleID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ch := range title.Chapters {
		if !ch.Locked || contains(ids, ch.ID) {
			count++
		}
	}
	return count, nil
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
