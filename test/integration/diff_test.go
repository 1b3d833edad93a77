package integration_test

import (
	"testing"

	"codebridge/test/integration/harness"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		args     []string
		contains []string
	}{
		{
			name:     "added line raw",
			old:      "a\n",
			new:      "a\nb\n",
			args:     []string{"--format", "raw"},
			contains: []string{"@@ -1 +1,2 @@", "\n+b"},
		},
		{
			name:     "final newline added",
			old:      "a",
			new:      "a\n",
			args:     []string{"--format", "raw"},
			contains: []string{"-a\n\\ No newline at end of file\n+a"},
		},
		{
			name:     "markdown escapes specials",
			old:      "x = 1\n",
			new:      "x = 2\n",
			args:     []string{"--format", "markdown"},
			contains: []string{"-x \\= 1", "+x \\= 2", "_@@ \\-1 \\+1 @@_"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			oldPath := env.WriteFile("old.txt", tt.old)
			newPath := env.WriteFile("new.txt", tt.new)

			args := append([]string{"diff", oldPath, newPath}, tt.args...)
			result := harness.RunCommand(t, env, args...)
			harness.AssertSuccess(t, result)
			for _, want := range tt.contains {
				harness.AssertStdoutContains(t, result, want)
			}
		})
	}
}

func TestDiff_NoChanges(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{name: "identical files", old: "a\nb\n", new: "a\nb\n"},
		{name: "both unterminated", old: "a\nb", new: "a\nb"},
		{name: "both empty", old: "", new: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			oldPath := env.WriteFile("old.txt", tt.old)
			newPath := env.WriteFile("new.txt", tt.new)

			result := harness.RunCommand(t, env, "diff", "--format", "raw", oldPath, newPath)
			harness.AssertNoChanges(t, result)
		})
	}
}

func TestDiff_MissingFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	newPath := env.WriteFile("new.txt", "x\n")

	result := harness.RunCommand(t, env, "diff", env.Home+"/missing.txt", newPath)
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "failed to read")
}

func TestDiff_Stdin(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	oldPath := env.WriteFile("old.txt", "one\ntwo\n")

	result := harness.RunCommandWithStdin(t, env, "one\nthree\n", "diff", "--format", "raw", oldPath, "-")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "+++ -")
	harness.AssertStdoutContains(t, result, "-two\n+three")
}

func TestDiff_BothStdin(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithStdin(t, env, "x\n", "diff", "-", "-")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "only one side can be read from stdin")
}
