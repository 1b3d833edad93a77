package cmd

import (
	"context"
	"fmt"

	"codebridge/internal/domain"
)

// SessionsShowCmd shows one session
type SessionsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Token  string `arg:"" optional:"" help:"Session token"`
	User   int64  `help:"Show this user's active session instead"`
}

// AfterApply validates that a token or a user is given
func (s *SessionsShowCmd) AfterApply() error {
	if (s.Token == "") == (s.User == 0) {
		return fmt.Errorf("exactly one of a token or --user is required")
	}
	return nil
}

// Run executes the show command
func (s *SessionsShowCmd) Run(cli *CLI) error {
	var session *domain.Session
	var err error
	if s.Token != "" {
		session, err = cli.Container.SessionService.GetSession(s.Token)
	} else {
		session, err = cli.Container.SessionService.GetActiveSession(context.Background(), s.User)
	}
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(session)
	}
	printSession(session)
	return nil
}
