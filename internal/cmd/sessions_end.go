package cmd

import (
	"context"
	"fmt"
)

// SessionsEndCmd ends a session
type SessionsEndCmd struct {
	Token string `arg:"" optional:"" help:"Session token"`
	User  int64  `help:"End this user's active session instead"`
}

// AfterApply validates that a token or a user is given
func (s *SessionsEndCmd) AfterApply() error {
	if (s.Token == "") == (s.User == 0) {
		return fmt.Errorf("exactly one of a token or --user is required")
	}
	return nil
}

// Run executes the end command
func (s *SessionsEndCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var ended bool
	var target string
	if s.Token != "" {
		ended = cli.Container.SessionService.EndSession(ctx, s.Token)
		target = fmt.Sprintf("session '%s'", s.Token)
	} else {
		ended = cli.Container.SessionService.EndUserSession(ctx, s.User)
		target = fmt.Sprintf("active session of user %d", s.User)
	}

	if !ended {
		return fmt.Errorf("no %s to end", target)
	}
	fmt.Printf("Ended %s\n", target)
	return nil
}
