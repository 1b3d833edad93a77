package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnified_NoChanges(t *testing.T) {
	assert.Equal(t, NoChanges, Unified("a\nb\n", "a\nb\n", DefaultOptions()))
	assert.Equal(t, NoChanges, Unified("", "", DefaultOptions()))
	assert.Equal(t, NoChanges, Unified("a\nb", "a\nb", DefaultOptions()))
}

func TestUnified_FinalNewline(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		expected []string
	}{
		{
			name: "newline added",
			old:  "a",
			new:  "a\n",
			expected: []string{
				"--- old",
				"+++ new",
				"@@ -1 +1 @@",
				"-a",
				NoNewlineMarker,
				"+a",
			},
		},
		{
			name: "newline removed",
			old:  "a\nb\n",
			new:  "a\nb",
			expected: []string{
				"--- old",
				"+++ new",
				"@@ -1,2 +1,2 @@",
				" a",
				"-b",
				"+b",
				NoNewlineMarker,
			},
		},
		{
			name: "unterminated context line",
			old:  "x\nend",
			new:  "y\nend",
			expected: []string{
				"--- old",
				"+++ new",
				"@@ -1,2 +1,2 @@",
				"-x",
				"+y",
				" end",
				NoNewlineMarker,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unified(tt.old, tt.new, DefaultOptions())
			assert.Equal(t, strings.Join(tt.expected, "\n"), got)
		})
	}
}

func TestUnified_AddedLine(t *testing.T) {
	got := Unified("a\n", "a\nb\n", DefaultOptions())

	expected := strings.Join([]string{
		"--- old",
		"+++ new",
		"@@ -1 +1,2 @@",
		" a",
		"+b",
	}, "\n")
	assert.Equal(t, expected, got)

	added := 0
	for _, line := range strings.Split(got, "\n") {
		if Classify(line, true) == LineAdded {
			added++
		}
	}
	assert.Equal(t, 1, added)
}

func TestUnified_Options(t *testing.T) {
	oldText := "1\n2\n3\n4\n5\n6\n7\n"
	newText := "1\n2\n3\nfour\n5\n6\n7\n"

	got := Unified(oldText, newText, Options{Context: 1, FromFile: "a/main.go", ToFile: "b/main.go"})

	assert.True(t, strings.HasPrefix(got, "--- a/main.go\n+++ b/main.go\n"))
	assert.Contains(t, got, "@@ -3,3 +3,3 @@")
	assert.Contains(t, got, "-4\n+four")
	assert.NotContains(t, got, " 2\n")
}

func TestUnified_EmptyLabelsFallBack(t *testing.T) {
	got := Unified("x\n", "y\n", Options{Context: 3})
	assert.True(t, strings.HasPrefix(got, "--- old\n+++ new\n"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line     string
		inHunk   bool
		expected LineKind
	}{
		{"--- old", false, LineHeader},
		{"+++ new", false, LineHeader},
		{"@@ -1 +1 @@", false, LineHunk},
		{"+added", true, LineAdded},
		{"-removed", true, LineRemoved},
		{"--- sql comment removed", true, LineRemoved},
		{"+++ counter", true, LineAdded},
		{" context", true, LineContext},
		{NoNewlineMarker, true, LineContext},
		{"", true, LineContext},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.line, tt.inHunk))
		})
	}
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `fmt\.Println\(a\[0\]\)`, EscapeMarkdown("fmt.Println(a[0])"))
	assert.Equal(t, `a \- b \+ c \= d\!`, EscapeMarkdown("a - b + c = d!"))
	assert.Equal(t, `path\\to\_file`, EscapeMarkdown(`path\to_file`))
	assert.Equal(t, "plain text", EscapeMarkdown("plain text"))
}

func TestRender_Markdown(t *testing.T) {
	text := Unified("x := f(1)\n", "x := f(2)\n", DefaultOptions())

	got := Render(text, MarkdownRenderer{})

	expected := strings.Join([]string{
		`*\-\-\- old*`,
		`*\+\+\+ new*`,
		`_@@ \-1 \+1 @@_`,
		`-x :\= f\(1\)`,
		`+x :\= f\(2\)`,
	}, "\n")
	assert.Equal(t, expected, got)
}

func TestRender_MarkdownKeepsChangeMarkersBare(t *testing.T) {
	text := Unified("a\n", "a\n- item\n", DefaultOptions())

	got := Render(text, MarkdownRenderer{})

	lines := strings.Split(got, "\n")
	assert.Equal(t, `+\- item`, lines[len(lines)-1])
	assert.Equal(t, ` a`, lines[len(lines)-2])
}

func TestRender_NoChangesMessage(t *testing.T) {
	assert.Equal(t, NoChanges, Render(NoChanges, PlainRenderer{}))
	assert.Equal(t, `✅ No changes detected \- files are identical`, Render(NoChanges, MarkdownRenderer{}))
}

func TestRender_PlainIsIdentity(t *testing.T) {
	text := Unified("a\nb\nc\n", "a\nc\nd\n", DefaultOptions())
	assert.Equal(t, text, Render(text, PlainRenderer{}))
}

func TestRender_TerminalPreservesContent(t *testing.T) {
	text := Unified("a\n", "b\n", DefaultOptions())

	got := Render(text, TerminalRenderer{})

	for _, line := range strings.Split(text, "\n") {
		assert.Contains(t, got, line)
	}
	assert.Len(t, strings.Split(got, "\n"), len(strings.Split(text, "\n")))
}
