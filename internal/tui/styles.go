package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
)

type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Loading     lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Marker      lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Locked      lipgloss.Style
	Badge       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Loading: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Marker: lipgloss.NewStyle().
			Foreground(ColorError),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Width(16).
			Foreground(ColorSecondary),
		Focused: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Locked: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Badge: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
	}
}
