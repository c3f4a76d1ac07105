package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/services"
)

// UnlockScreen redeems chapter codes.
type UnlockScreen struct {
	controller *services.MangaController
	input      textinput.Model
	last       *services.RedeemResult
	width      int
	height     int
}

func NewUnlockScreen(controller *services.MangaController) *UnlockScreen {
	ti := textinput.New()
	ti.Placeholder = "Enter unlock code..."
	ti.CharLimit = 64
	ti.Width = 40

	return &UnlockScreen{
		controller: controller,
		input:      ti,
	}
}

func (s *UnlockScreen) Init() tea.Cmd {
	s.input.Focus()
	return textinput.Blink
}

func (s *UnlockScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			res, err := s.controller.Redeem(s.input.Value())
			if err != nil {
				return s, nil
			}
			s.input.SetValue("")
			s.last = &res
			return s, func() tea.Msg { return redeemedMsg{result: res} }
		case "esc":
			s.input.SetValue("")
			return s, func() tea.Msg { return switchTabMsg{tab: libraryTab} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *UnlockScreen) View() string {
	header := styles.TitleStyle.Render("🔑 Unlock Chapter")

	intro := styles.TextStyle.Render("Codes are case-insensitive. Each code unlocks one chapter.")

	inputView := styles.FocusedInputStyle.Render(s.input.View())

	var last string
	if s.last != nil {
		last = styles.MutedStyle.Render(fmt.Sprintf("Last unlocked: %s • %s", s.last.TitleName, s.last.Label)) + "\n"
	}

	help := styles.HelpStyle.Render("enter: redeem • esc: back • tab: library • ctrl+c: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s%s", header, intro, inputView, last, help)
}
