package screens

import (
	"fmt"
	"image"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangareader/pkg/app/components"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/integrations"
	"github.com/kerbaras/mangareader/pkg/reader"
	"github.com/kerbaras/mangareader/pkg/services"
)

// ReaderScreen shows one page at a time as a text preview.
type ReaderScreen struct {
	controller *services.MangaController

	// page is the slot the reader is waiting on; results for any other key
	// are stale and dropped.
	page       services.PageKey
	hasPage    bool
	img        image.Image
	loadErr    error
	fullscreen bool

	width  int
	height int
}

func NewReaderScreen(controller *services.MangaController) *ReaderScreen {
	return &ReaderScreen{controller: controller}
}

// Init starts loading the page under the cursor.
func (s *ReaderScreen) Init() tea.Cmd {
	s.sync()
	return nil
}

func (s *ReaderScreen) Fullscreen() bool {
	return s.fullscreen
}

// sync requests the current page when the cursor moved to a new slot.
func (s *ReaderScreen) sync() {
	key, _, ok := s.controller.CurrentPage()
	if !ok {
		s.hasPage = false
		return
	}
	if s.hasPage && key == s.page {
		return
	}
	s.page = key
	s.hasPage = true
	s.img = nil
	s.loadErr = nil
	s.controller.LoadCurrentPage()
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case pageLoadedMsg:
		s.receive(services.PageResult(msg))

	case tea.KeyMsg:
		s.handleKey(msg.String())
		s.sync()
	}
	return s, nil
}

func (s *ReaderScreen) receive(res services.PageResult) {
	if !s.hasPage || res.Key != s.page {
		return
	}
	if res.Err != nil {
		s.loadErr = res.Err
		return
	}
	img, err := integrations.DecodePage(res.Data)
	if err != nil {
		log.Printf("page %s: %v", res.Ref, err)
		s.loadErr = err
		return
	}
	s.img = img
}

func (s *ReaderScreen) handleKey(key string) {
	c := s.controller
	switch key {
	case "left":
		c.StepPage(reader.ArrowLeft)
	case "right":
		c.StepPage(reader.ArrowRight)
	case "space", " ", "pgdown":
		c.NextPage()
	case "pgup":
		c.PreviousPage()
	case "n":
		c.NextChapter()
	case "p":
		c.PreviousChapter()
	case "+", "=":
		c.Zoom(reader.ZoomStep)
	case "-":
		c.Zoom(-reader.ZoomStep)
	case "0":
		c.ResetZoom()
	case "w":
		c.SetFitMode(reader.FitWidth)
	case "h":
		c.SetFitMode(reader.FitHeight)
	case "b":
		c.SetFitMode(reader.FitBoth)
	case "d":
		c.ToggleDirection()
	case "f":
		s.fullscreen = !s.fullscreen
	case "r":
		if s.loadErr != nil {
			s.loadErr = nil
			c.RetryCurrentPage()
		}
	case "esc", "backspace":
		s.fullscreen = false
		s.hasPage = false
		c.Back()
	}
}

func (s *ReaderScreen) View() string {
	title := s.controller.CurrentTitle()
	chapter := s.controller.CurrentChapter()
	if title == nil || chapter == nil {
		return "Loading..."
	}
	cursor := s.controller.State().Cursor

	chrome := 0
	var header, status, help string
	if !s.fullscreen {
		header = styles.TitleStyle.MarginBottom(0).Render(fmt.Sprintf("%s • %s", title.Name, chapter.DisplayName()))
		status = components.ReaderStatus(cursor, s.width)
		help = styles.HelpStyle.MarginTop(0).Render(
			"←/→: page • n/p: chapter • +/-/0: zoom • w/h/b: fit • d: direction • f: fullscreen • r: retry • esc: back",
		)
		chrome = 6
	}

	page := s.renderPage(cursor, s.width, max(s.height-chrome, 1))

	if s.fullscreen {
		return page
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, page, status, help)
}

func (s *ReaderScreen) renderPage(c reader.Cursor, width, height int) string {
	switch {
	case s.loadErr != nil:
		msg := styles.StatusError.Render(fmt.Sprintf("Page %d failed to load", c.Page+1)) +
			"\n" + styles.MutedStyle.Render("press r to retry")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	case s.img == nil:
		msg := styles.StatusInfo.Render(fmt.Sprintf("Loading page %d...", c.Page+1))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	art := integrations.RenderASCII(s.img, c.Fit, c.Zoom, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, styles.PageStyle.Render(art))
}
