package theme

import "github.com/charmbracelet/lipgloss"

// Main CLI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Session state styles
var (
	ActiveStyle = lipgloss.NewStyle().
			Foreground(ColorActive)

	InactiveStyle = lipgloss.NewStyle().
			Foreground(ColorInactive)
)

// Diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	DiffContextStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	DiffHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	DiffHunkStyle = lipgloss.NewStyle().
			Foreground(ColorHunk)

	DiffMessageStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)
)

// Summary styles
var (
	RepoNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	DirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)
