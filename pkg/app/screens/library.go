package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangareader/pkg/app/components"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/services"
)

type LibraryScreen struct {
	controller *services.MangaController
	titleList  *components.TitleList
	search     textinput.Model
	width      int
	height     int
}

func NewLibraryScreen(controller *services.MangaController) *LibraryScreen {
	ti := textinput.New()
	ti.Placeholder = "Search by title or author..."
	ti.CharLimit = 100
	ti.Width = 50

	s := &LibraryScreen{
		controller: controller,
		titleList:  components.NewTitleList(),
		search:     ti,
	}
	s.refresh()
	return s
}

func (s *LibraryScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

// Searching is true while the search field has focus.
func (s *LibraryScreen) Searching() bool {
	return s.search.Focused()
}

// refresh rebuilds the list from the current query and unlock counts.
func (s *LibraryScreen) refresh() {
	titles := s.controller.Search(s.search.Value())
	items := make([]components.TitleListItem, len(titles))
	for i := range titles {
		title := s.controller.Catalog().Title(titles[i].ID)
		unlocked, total, _ := s.controller.TitleProgress(title.ID)
		items[i] = components.TitleListItem{
			Title:         title,
			ChapterCount:  total,
			UnlockedCount: unlocked,
		}
	}
	s.titleList.SetItems(items)
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.titleList.Width = msg.Width - 4
		s.titleList.Height = msg.Height - 12
		return s, nil

	case tea.KeyMsg:
		if s.search.Focused() {
			return s, s.updateSearch(msg)
		}

		switch msg.String() {
		case "up", "k":
			s.titleList.Prev()
		case "down", "j":
			s.titleList.Next()
		case "/":
			s.search.Focus()
			return s, textinput.Blink
		case "esc":
			if s.search.Value() != "" {
				s.search.SetValue("")
				s.refresh()
			}
		case "enter":
			selected := s.titleList.Selected()
			if selected != nil {
				s.controller.OpenTitle(selected.Title.ID)
				return s, nil
			}
		}
		return s, nil
	}

	if s.search.Focused() {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LibraryScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.search.SetValue("")
		s.search.Blur()
		s.refresh()
		return nil
	case "enter", "down":
		s.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refresh()
	return cmd
}

func (s *LibraryScreen) View() string {
	header := styles.TitleStyle.Render("📚 Manga Library")

	inputStyle := styles.InputStyle
	if s.search.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	searchView := ""
	if s.search.Focused() || s.search.Value() != "" {
		searchView = inputStyle.Render(s.search.View()) + "\n"
	}

	count := styles.MutedStyle.Render(fmt.Sprintf("%d of %d titles", len(s.titleList.Items), len(s.controller.Catalog().Titles)))

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • enter: open • /: search • esc: clear • t: theme • tab: unlock • q: quit",
	)

	return fmt.Sprintf("%s\n%s%s\n%s%s", header, searchView, count, s.titleList.View(), help)
}
