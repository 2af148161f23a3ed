package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorAccent   = lipgloss.Color("63")
	ColorSubtle   = lipgloss.Color("241")
	ColorBorder   = lipgloss.Color("240")
	ColorCritical = lipgloss.Color("196")
	ColorAvatarBg = lipgloss.Color("57")
	ColorAvatarFg = lipgloss.Color("230")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// HeaderStyle renders the screen title.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// HandleStyle renders @handles.
	HandleStyle = lipgloss.NewStyle().Bold(true)

	// SubtleStyle renders metadata and help text.
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	// CriticalStyle renders list errors.
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)

	// BadgeStyle renders count badges in the card header.
	BadgeStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	// AvatarStyle renders the initial fallback as a filled circle.
	AvatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAvatarFg).
			Background(ColorAvatarBg).
			Padding(0, 1)

	// CardStyle frames a collapsed card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// SelectedCardStyle frames the card under the cursor.
	SelectedCardStyle = CardStyle.BorderForeground(ColorAccent)

	// DetailStyle indents the expanded region of a card.
	DetailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorBorder)
)
