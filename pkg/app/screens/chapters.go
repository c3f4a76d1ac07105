package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/services"
)

// ChaptersScreen lists the chapters of the open title.
type ChaptersScreen struct {
	controller      *services.MangaController
	titleID         int
	selectedChapter int
	width           int
	height          int
}

func NewChaptersScreen(controller *services.MangaController) *ChaptersScreen {
	return &ChaptersScreen{controller: controller}
}

// title resets the selection whenever a different title is opened.
func (s *ChaptersScreen) title() *data.Title {
	t := s.controller.CurrentTitle()
	if t == nil {
		return nil
	}
	if t.ID != s.titleID {
		s.titleID = t.ID
		s.selectedChapter = 0
	}
	return t
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (s *ChaptersScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		title := s.title()
		if title == nil {
			return s, nil
		}

		switch msg.String() {
		case "up", "k":
			if s.selectedChapter > 0 {
				s.selectedChapter--
			}
		case "down", "j":
			if s.selectedChapter < len(title.Chapters)-1 {
				s.selectedChapter++
			}
		case "enter":
			if s.selectedChapter < len(title.Chapters) {
				if err := s.controller.OpenChapter(title.Chapters[s.selectedChapter].ID); err == nil {
					return s, func() tea.Msg { return chapterOpenedMsg{} }
				}
			}
		case "u":
			return s, func() tea.Msg { return switchTabMsg{tab: unlockTab} }
		case "esc", "backspace":
			s.controller.Back()
		}
	}

	return s, nil
}

func (s *ChaptersScreen) View() string {
	title := s.title()
	if title == nil {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 %s", title.Name))

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: read • u: unlock code • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, s.renderInfo(title), s.renderChapters(title), help)
}

func (s *ChaptersScreen) renderInfo(title *data.Title) string {
	desc := truncate(title.Description, 200)

	unlocked, total, _ := s.controller.TitleProgress(title.ID)
	meta := fmt.Sprintf("%s • %d / %d chapters unlocked", title.Status, unlocked, total)
	if title.Author != "" {
		meta = title.Author + " • " + meta
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextStyle.Render(desc),
		styles.MutedStyle.Render(meta),
	)
	return styles.CardStyle.Width(max(s.width-4, 20)).Render(info)
}

func (s *ChaptersScreen) renderChapters(title *data.Title) string {
	if len(title.Chapters) == 0 {
		return styles.MutedStyle.Render("No chapters yet")
	}

	visible := max(s.height-14, 3)
	start := 0
	if s.selectedChapter >= visible {
		start = s.selectedChapter - visible + 1
	}
	end := min(start+visible, len(title.Chapters))

	var b strings.Builder
	for i := start; i < end; i++ {
		ch := &title.Chapters[i]

		icon := "📖"
		style := styles.UnlockedStyle
		if !s.controller.IsUnlocked(title.ID, ch.ID) {
			icon = "🔒"
			style = styles.LockedStyle
		}

		cursor := "  "
		if i == s.selectedChapter {
			cursor = "▸ "
			style = style.Bold(true)
		}

		line := fmt.Sprintf("%s%s %s", cursor, icon, ch.DisplayName())
		if ch.Date != "" {
			line += styles.MutedStyle.Render("  " + ch.Date)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
