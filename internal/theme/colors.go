package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session state colors
const (
	ColorActive   Color = "2" // Green - reachable through the active lookup
	ColorInactive Color = "8" // Gray - ended, expired or superseded
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Diff colors
const (
	ColorAdditions Color = "2"  // Green
	ColorDeletions Color = "1"  // Red
	ColorHunk      Color = "86" // Cyan
)
