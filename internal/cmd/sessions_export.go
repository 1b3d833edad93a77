package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"codebridge/internal/domain"
)

// SessionsExportCmd writes stored sessions as a JSON array
type SessionsExportCmd struct {
	Output string `help:"Write to this file instead of stdout" short:"o" type:"path"`
	User   int64  `help:"Only export this user's sessions"`
}

// Run executes the export command
func (s *SessionsExportCmd) Run(cli *CLI) error {
	var sessions []domain.Session
	if s.User != 0 {
		sessions = cli.Container.SessionService.ExportUser(s.User)
	} else {
		sessions = cli.Container.SessionService.Export()
	}

	if s.Output == "" {
		return printJSON(sessions)
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(s.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d sessions to %s\n", len(sessions), s.Output)
	return nil
}
