package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/data"
)

type TitleListItem struct {
	Title         *data.Title
	ChapterCount  int
	UnlockedCount int
}

type TitleList struct {
	Items         []TitleListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewTitleList() *TitleList {
	return &TitleList{
		Items:         []TitleListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (m *TitleList) SetItems(items []TitleListItem) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *TitleList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *TitleList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *TitleList) Selected() *TitleListItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// visibleRange keeps the selection on screen; every card takes four lines.
func (m *TitleList) visibleRange() (int, int) {
	perPage := max(m.Height/4, 1)
	start := 0
	if m.SelectedIndex >= perPage {
		start = m.SelectedIndex - perPage + 1
	}
	return start, min(start+perPage, len(m.Items))
}

func (m *TitleList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No manga found")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		item := m.Items[i]
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		name := styles.SubtitleStyle.Bold(true).Italic(false).Render(item.Title.Name)
		if item.Title.Author != "" {
			name += styles.MutedStyle.Render(" by " + item.Title.Author)
		}

		chapterInfo := styles.MutedStyle.Render(
			fmt.Sprintf("%s • %d / %d chapters unlocked", item.Title.Status, item.UnlockedCount, item.ChapterCount),
		)

		card := cardStyle.Width(m.Width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, name, chapterInfo))
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
