package diff

import "strings"

// Characters that must be escaped in chat MarkdownV2 text
const markdownSpecials = "\\_*[]()~`>#+-=|{}.!"

// MarkdownRenderer renders for a chat surface using MarkdownV2. Headers are
// bold and hunk markers italic. The leading +/- of changed lines stays bare.
type MarkdownRenderer struct{}

func (MarkdownRenderer) RenderLine(kind LineKind, line string) string {
	switch kind {
	case LineHeader:
		return "*" + EscapeMarkdown(line) + "*"
	case LineHunk:
		return "_" + EscapeMarkdown(line) + "_"
	case LineAdded, LineRemoved:
		return line[:1] + EscapeMarkdown(line[1:])
	default:
		return EscapeMarkdown(line)
	}
}

// EscapeMarkdown backslash-escapes every MarkdownV2 special character
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
