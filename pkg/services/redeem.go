package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/mangareader/pkg/data"
)

// ErrEmptyCode is returned for a code that is blank after trimming.
var ErrEmptyCode = errors.New("please enter a code")

// InvalidCodeError reports a code that matches no chapter.
type InvalidCodeError struct {
	Code string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %q", e.Code)
}

// RedeemResult identifies the chapter a code unlocked.
type RedeemResult struct {
	TitleID         int
	ChapterID       int
	TitleName       string
	Label           string
	AlreadyUnlocked bool
}

// Redeemer matches unlock codes against the catalog.
type Redeemer struct {
	catalog *data.Catalog
	ledger  *Ledger
}

func NewRedeemer(catalog *data.Catalog, ledger *Ledger) *Redeemer {
	return &Redeemer{catalog: catalog, ledger: ledger}
}

// NormalizeCode trims and upper-cases user input.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Redeem unlocks the first chapter, in catalog order, whose code equals the
// input ignoring case and surrounding whitespace. The ledger is only
// touched on a match.
func (r *Redeemer) Redeem(code string) (RedeemResult, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return RedeemResult{}, ErrEmptyCode
	}

	title, ch := r.find(normalized)
	if ch == nil {
		return RedeemResult{}, &InvalidCodeError{Code: normalized}
	}

	already, err := r.ledger.IsUnlocked(title.ID, ch.ID)
	if err != nil {
		return RedeemResult{}, err
	}
	if err := r.ledger.Unlock(title.ID, ch.ID); err != nil {
		return RedeemResult{}, fmt.Errorf("failed to unlock %s: %w", ch.DisplayName(), err)
	}

	return RedeemResult{
		TitleID:         title.ID,
		ChapterID:       ch.ID,
		TitleName:       title.Name,
		Label:           ch.DisplayName(),
		AlreadyUnlocked: already,
	}, nil
}

func (r *Redeemer) find(normalized string) (*data.Title, *data.Chapter) {
	for i := range r.catalog.Titles {
		title := &r.catalog.Titles[i]
		for j := range title.Chapters {
			ch := &title.Chapters[j]
			if ch.HasCode() && strings.EqualFold(strings.TrimSpace(ch.Code), normalized) {
				return title, ch
			}
		}
	}
	return nil, nil
}
