package cmd

import (
	"context"
	"fmt"

	"codebridge/internal/theme"
)

// SessionsValidateCmd validates a token for its owner
type SessionsValidateCmd struct {
	Token string `arg:"" help:"Session token"`
	User  int64  `help:"Chat user ID the token must belong to" required:""`
}

// Run executes the validate command. An invalid or expired session is
// reported as an error so the exit status reflects the outcome.
func (s *SessionsValidateCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.Validate(context.Background(), s.Token, s.User)
	if err != nil {
		return err
	}

	fmt.Printf("%s session %s for user %d (working dir %s)\n",
		theme.ActiveStyle.Render("Valid"), session.Token, session.UserID, session.WorkingDir)
	return nil
}
