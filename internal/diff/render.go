package diff

import (
	"fmt"
	"strings"
)

// LineKind classifies one line of unified diff output
type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
	LineHeader
	LineHunk
	LineMessage
)

// Renderer formats classified diff lines for one display surface
type Renderer interface {
	RenderLine(kind LineKind, line string) string
}

// Classify returns the kind of a unified diff line. File headers only occur
// before the first hunk, so a removed "--" line inside a hunk stays a removal.
func Classify(line string, inHunk bool) LineKind {
	switch {
	case !inHunk && (strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++")):
		return LineHeader
	case strings.HasPrefix(line, "@@"):
		return LineHunk
	case strings.HasPrefix(line, "-"):
		return LineRemoved
	case strings.HasPrefix(line, "+"):
		return LineAdded
	default:
		return LineContext
	}
}

// Render formats text produced by Unified. Anything that is not a diff,
// such as NoChanges, is rendered as a single message.
func Render(text string, r Renderer) string {
	if !isUnifiedDiff(text) {
		return r.RenderLine(LineMessage, text)
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	inHunk := false
	for _, line := range lines {
		kind := Classify(line, inHunk)
		if kind == LineHunk {
			inHunk = true
		}
		out = append(out, r.RenderLine(kind, line))
	}
	return strings.Join(out, "\n")
}

func isUnifiedDiff(text string) bool {
	return strings.HasPrefix(text, "--- ")
}

// Output formats accepted by RendererFor
const (
	FormatMarkdown = "markdown"
	FormatRaw      = "raw"
	FormatTerminal = "terminal"
)

// RendererFor returns the renderer for a format name; "" selects raw
func RendererFor(format string) (Renderer, error) {
	switch format {
	case "", FormatRaw:
		return PlainRenderer{}, nil
	case FormatMarkdown:
		return MarkdownRenderer{}, nil
	case FormatTerminal:
		return TerminalRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown diff format %q", format)
	}
}
