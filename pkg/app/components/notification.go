package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/services"
)

// DismissMsg removes the notification with the given ID.
type DismissMsg struct {
	ID string
}

// Notifications is a stack of transient messages. Each one dismisses
// itself after a TTL.
type Notifications struct {
	items []services.Notification
	ttl   time.Duration
}

func NewNotifications(ttl time.Duration) *Notifications {
	return &Notifications{ttl: ttl}
}

// Push shows n and returns the command that dismisses it later.
func (n *Notifications) Push(note services.Notification) tea.Cmd {
	n.items = append(n.items, note)
	id := note.ID
	return tea.Tick(n.ttl, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}

func (n *Notifications) Dismiss(id string) {
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}

func (n *Notifications) Len() int {
	return len(n.items)
}

func (n *Notifications) View() string {
	if len(n.items) == 0 {
		return ""
	}

	lines := make([]string, len(n.items))
	for i, item := range n.items {
		lines[i] = styles.NotificationStyle(string(item.Kind)).Render(item.Message)
	}
	return strings.Join(lines, "\n")
}
