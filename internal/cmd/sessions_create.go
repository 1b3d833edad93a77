package cmd

import (
	"context"
	"fmt"

	"codebridge/internal/logging"
)

// SessionsCreateCmd starts a new session
type SessionsCreateCmd struct {
	Format     string `help:"Output format: table or json" enum:"table,json" default:"table"`
	User       int64  `help:"Chat user ID" required:""`
	UserName   string `help:"Display name of the user" name:"name"`
	WorkingDir string `arg:"" optional:"" help:"Working directory (defaults to the configured workspace)"`
}

// Run executes the create command
func (s *SessionsCreateCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing sessions create command", "user_id", s.User, "working_dir", s.WorkingDir)

	session, err := cli.Container.SessionService.CreateSession(context.Background(), s.User, s.UserName, s.WorkingDir)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if s.Format == "json" {
		return printJSON(session)
	}
	printSession(session)
	return nil
}
