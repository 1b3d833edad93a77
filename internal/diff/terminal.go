package diff

import (
	"codebridge/internal/theme"
)

// TerminalRenderer colours diff lines with the theme's lipgloss styles
type TerminalRenderer struct{}

func (TerminalRenderer) RenderLine(kind LineKind, line string) string {
	switch kind {
	case LineHeader:
		return theme.DiffHeaderStyle.Render(line)
	case LineHunk:
		return theme.DiffHunkStyle.Render(line)
	case LineAdded:
		return theme.AdditionsStyle.Render(line)
	case LineRemoved:
		return theme.DeletionsStyle.Render(line)
	case LineMessage:
		return theme.DiffMessageStyle.Render(line)
	default:
		return theme.DiffContextStyle.Render(line)
	}
}

// PlainRenderer returns the diff unchanged
type PlainRenderer struct{}

func (PlainRenderer) RenderLine(_ LineKind, line string) string { return line }
