// Package harness provides utilities for integration testing the codebridge CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CODEBRIDGE_HOME: Isolated per test (temp directory)
//   - CODEBRIDGE_DEBUG: Disabled to reduce noise
//   - GIT_TERMINAL_PROMPT: Disabled so a clone never waits for credentials
package harness
