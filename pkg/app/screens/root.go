package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangareader/pkg/app/components"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/reader"
	"github.com/kerbaras/mangareader/pkg/services"
)

// AutoOpenDelay is how long a freshly redeemed chapter stays on the unlock
// screen before the reader jumps to it.
const AutoOpenDelay = 500 * time.Millisecond

type tab int

const (
	libraryTab tab = iota
	unlockTab
)

// RootScreen switches between the library flow (catalog, chapter list,
// reader) and the unlock tab. Which library screen is shown follows the
// controller's navigation state.
type RootScreen struct {
	controller *services.MangaController

	tab      tab
	library  *LibraryScreen
	chapters *ChaptersScreen
	reader   *ReaderScreen
	unlock   *UnlockScreen
	notes    *components.Notifications

	width  int
	height int
}

// Messages
type notificationMsg services.Notification

type pageLoadedMsg services.PageResult

type redeemedMsg struct {
	result services.RedeemResult
}

type autoOpenMsg struct {
	result services.RedeemResult
}

// switchTabMsg lets a sub-screen move focus to the other tab.
type switchTabMsg struct {
	tab tab
}

// chapterOpenedMsg tells the reader to start loading the current page.
type chapterOpenedMsg struct{}

func NewRootScreen(controller *services.MangaController) *RootScreen {
	styles.Use(styles.ForTheme(string(controller.Theme())))

	return &RootScreen{
		controller: controller,
		tab:        libraryTab,
		library:    NewLibraryScreen(controller),
		chapters:   NewChaptersScreen(controller),
		reader:     NewReaderScreen(controller),
		unlock:     NewUnlockScreen(controller),
		notes:      components.NewNotifications(services.NotificationTTL),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(
		r.library.Init(),
		r.listenForNotifications,
		r.listenForPages,
	)
}

func (r *RootScreen) listenForNotifications() tea.Msg {
	return notificationMsg(<-r.controller.Notifications())
}

func (r *RootScreen) listenForPages() tea.Msg {
	return pageLoadedMsg(<-r.controller.Pages().Results())
}

// typing is true while a text field has focus, so single-letter shortcuts
// go to the field instead.
func (r *RootScreen) typing() bool {
	if r.tab == unlockTab {
		return true
	}
	return r.view() == reader.ViewCatalog && r.library.Searching()
}

func (r *RootScreen) view() reader.View {
	return r.controller.State().View
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Every screen keeps its own size.
		r.library.Update(msg)
		r.chapters.Update(msg)
		r.reader.Update(msg)
		r.unlock.Update(msg)
		return r, nil

	case notificationMsg:
		return r, tea.Batch(r.notes.Push(services.Notification(msg)), r.listenForNotifications)

	case components.DismissMsg:
		r.notes.Dismiss(msg.ID)
		return r, nil

	case pageLoadedMsg:
		r.reader.Update(msg)
		return r, r.listenForPages

	case redeemedMsg:
		r.library.refresh()
		if r.controller.ShouldAutoOpen(msg.result) {
			return r, tea.Tick(AutoOpenDelay, func(time.Time) tea.Msg {
				return autoOpenMsg{result: msg.result}
			})
		}
		return r, nil

	case autoOpenMsg:
		if err := r.controller.OpenRedeemed(msg.result); err == nil && r.view() == reader.ViewReader {
			r.tab = libraryTab
			return r, r.reader.Init()
		}
		return r, nil

	case switchTabMsg:
		return r, r.switchTab(msg.tab)

	case chapterOpenedMsg:
		return r, r.reader.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "tab":
			if r.tab == libraryTab {
				return r, r.switchTab(unlockTab)
			}
			return r, r.switchTab(libraryTab)
		}
		if !r.typing() {
			switch msg.String() {
			case "q":
				return r, tea.Quit
			case "t":
				if theme, err := r.controller.ToggleTheme(); err == nil {
					styles.Use(styles.ForTheme(string(theme)))
				}
				return r, nil
			}
		}
	}

	return r, r.updateActive(msg)
}

func (r *RootScreen) switchTab(t tab) tea.Cmd {
	r.tab = t
	if t == unlockTab {
		return r.unlock.Init()
	}
	return nil
}

func (r *RootScreen) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if r.tab == unlockTab {
		_, cmd = r.unlock.Update(msg)
		return cmd
	}

	switch r.view() {
	case reader.ViewCatalog:
		_, cmd = r.library.Update(msg)
	case reader.ViewChapterList:
		_, cmd = r.chapters.Update(msg)
	case reader.ViewReader:
		_, cmd = r.reader.Update(msg)
	}
	return cmd
}

func (r *RootScreen) View() string {
	if r.width == 0 {
		return "Loading..."
	}

	var content string
	if r.tab == unlockTab {
		content = r.unlock.View()
	} else {
		switch r.view() {
		case reader.ViewCatalog:
			content = r.library.View()
		case reader.ViewChapterList:
			content = r.chapters.View()
		case reader.ViewReader:
			content = r.reader.View()
		}
	}

	notes := r.notes.View()
	if r.tab == libraryTab && r.view() == reader.ViewReader && r.reader.Fullscreen() {
		if notes == "" {
			return content
		}
		return fmt.Sprintf("%s\n%s", notes, content)
	}

	if notes != "" {
		notes += "\n"
	}
	return fmt.Sprintf("%s\n%s\n%s", r.renderTabs(), notes, content)
}

func (r *RootScreen) renderTabs() string {
	libraryLabel := "Library"
	unlockLabel := "Unlock"

	if r.tab == libraryTab {
		libraryLabel = styles.ActiveTabStyle.Render(libraryLabel)
		unlockLabel = styles.InactiveTabStyle.Render(unlockLabel)
	} else {
		libraryLabel = styles.InactiveTabStyle.Render(libraryLabel)
		unlockLabel = styles.ActiveTabStyle.Render(unlockLabel)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, libraryLabel, unlockLabel)
}
