package integration_test

import (
	"testing"

	"codebridge/test/integration/harness"
)

func TestVersionFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "codebridge "+harness.TestVersion)
	harness.AssertStdoutContains(t, result, "commit: integration")
}
