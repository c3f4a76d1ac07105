package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	TabActive  lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#FF6B9D"),
		Secondary:  lipgloss.Color("#C792EA"),
		Success:    lipgloss.Color("#C3E88D"),
		Warning:    lipgloss.Color("#FFCB6B"),
		Error:      lipgloss.Color("#F07178"),
		Info:       lipgloss.Color("#82AAFF"),
		Muted:      lipgloss.Color("#546E7A"),
		Background: lipgloss.Color("#263238"),
		Foreground: lipgloss.Color("#EEFFFF"),
		TabActive:  lipgloss.Color("#37474F"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#D81B60"),
		Secondary:  lipgloss.Color("#7E57C2"),
		Success:    lipgloss.Color("#2E7D32"),
		Warning:    lipgloss.Color("#EF6C00"),
		Error:      lipgloss.Color("#C62828"),
		Info:       lipgloss.Color("#1565C0"),
		Muted:      lipgloss.Color("#78909C"),
		Background: lipgloss.Color("#FAFAFA"),
		Foreground: lipgloss.Color("#212121"),
		TabActive:  lipgloss.Color("#E0E0E0"),
	}
)

var (
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Styles in use. Use rebuilds them whenever the theme changes.
var (
	Current Palette

	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	TextStyle          lipgloss.Style
	MutedStyle         lipgloss.Style
	CardStyle          lipgloss.Style
	ActiveCardStyle    lipgloss.Style
	LockedStyle        lipgloss.Style
	UnlockedStyle      lipgloss.Style
	StatusInfo         lipgloss.Style
	StatusSuccess      lipgloss.Style
	StatusError        lipgloss.Style
	ProgressBarStyle   lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
	ActiveTabStyle     lipgloss.Style
	InactiveTabStyle   lipgloss.Style
	HelpStyle          lipgloss.Style
	InputStyle         lipgloss.Style
	FocusedInputStyle  lipgloss.Style
	PageStyle          lipgloss.Style
)

func init() {
	Use(LightPalette)
}

// ForTheme returns the palette for "dark" or "light".
func ForTheme(theme string) Palette {
	if theme == "dark" {
		return DarkPalette
	}
	return LightPalette
}

// Use switches every style to the given palette.
func Use(p Palette) {
	Current = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Secondary).
		Padding(0, 2)

	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(p.Primary).
		Padding(0, 2)

	LockedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	UnlockedStyle = lipgloss.NewStyle().
		Foreground(p.Success)

	StatusInfo = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	StatusError = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
		Foreground(p.Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.TabActive).
		Padding(0, 2).
		Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		MarginTop(1)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Secondary).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Primary).
		Padding(0, 1)

	PageStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
}

// NotificationStyle picks the style for a notification kind.
func NotificationStyle(kind string) lipgloss.Style {
	switch kind {
	case "success":
		return StatusSuccess
	case "error":
		return StatusError
	case "info":
		return StatusInfo
	default:
		return MutedStyle
	}
}
