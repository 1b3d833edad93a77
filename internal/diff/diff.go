package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"codebridge/internal/logging"
)

// NoChanges is returned by Unified when both inputs are line-for-line identical
const NoChanges = "✅ No changes detected - files are identical"

// NoNewlineMarker follows a last line that has no terminating newline
const NoNewlineMarker = "\\ No newline at end of file"

// Options controls unified diff generation
type Options struct {
	Context  int
	FromFile string
	ToFile   string
}

// DefaultOptions labels the sides "old" and "new" with three lines of context
func DefaultOptions() Options {
	return Options{Context: 3, FromFile: "old", ToFile: "new"}
}

// Unified returns a unified diff of oldText against newText, or NoChanges
// when they are identical. Adding or removing the final newline is a change.
func Unified(oldText, newText string, opts Options) string {
	if opts.Context < 0 {
		opts.Context = 0
	}
	if opts.FromFile == "" {
		opts.FromFile = "old"
	}
	if opts.ToFile == "" {
		opts.ToFile = "new"
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(oldText),
		B:        splitLines(newText),
		Context:  opts.Context,
		FromFile: opts.FromFile,
		ToFile:   opts.ToFile,
	})
	if err != nil {
		logging.Logger.Error("Failed to create diff", "error", err)
		return fmt.Sprintf("❌ Error creating diff: %v", err)
	}
	if text == "" {
		return NoChanges
	}

	return strings.TrimSuffix(text, "\n")
}

// splitLines keeps line endings. An unterminated last line carries
// NoNewlineMarker on its own output line, so it never equals the
// terminated form of the same text.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += "\n" + NoNewlineMarker + "\n"
	}
	return lines
}
