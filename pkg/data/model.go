package data

import (
	"encoding/json"
	"fmt"
	"strings"
)

type TitleStatus string

const (
	StatusOngoing   TitleStatus = "ongoing"
	StatusCompleted TitleStatus = "completed"
)

// UnmarshalJSON accepts the status in any letter case ("Ongoing" in older
// catalog documents).
func (s *TitleStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	switch TitleStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusOngoing, "":
		*s = StatusOngoing
	case StatusCompleted:
		*s = StatusCompleted
	default:
		return fmt.Errorf("unknown title status %q", raw)
	}
	return nil
}

type Title struct {
	ID          int         `json:"id"`
	Name        string      `json:"title"`
	Author      string      `json:"author"`
	Description string      `json:"description"`
	Cover       string      `json:"cover"`
	Status      TitleStatus `json:"status"`
	LastUpdated string      `json:"lastUpdated,omitempty"`
	Chapters    []Chapter   `json:"chaptersList"`
}

type Chapter struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Label  string `json:"number"`
	Locked bool   `json:"locked"`
	Pages  Pages  `json:"pages"`
	Date   string `json:"date"`
	Code   string `json:"code,omitempty"`
}

// Chapter returns the chapter with the given id, or nil.
func (t *Title) Chapter(id int) *Chapter {
	for i := range t.Chapters {
		if t.Chapters[i].ID == id {
			return &t.Chapters[i]
		}
	}
	return nil
}

// DisplayName renders "Chapter 2: The Storm" style headings.
func (c *Chapter) DisplayName() string {
	label := c.Label
	if label == "" {
		label = fmt.Sprintf("Chapter %d", c.ID)
	}
	if c.Title == "" {
		return label
	}
	return fmt.Sprintf("%s: %s", label, c.Title)
}

// HasCode reports whether the chapter can be unlocked with a code.
func (c *Chapter) HasCode() bool {
	return strings.TrimSpace(c.Code) != ""
}
