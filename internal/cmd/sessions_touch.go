package cmd

import (
	"context"
	"fmt"
)

// SessionsTouchCmd refreshes a session's last use time
type SessionsTouchCmd struct {
	Token string `arg:"" help:"Session token"`
}

// Run executes the touch command
func (s *SessionsTouchCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.Touch(context.Background(), s.Token); err != nil {
		return err
	}
	fmt.Printf("Session '%s' touched\n", s.Token)
	return nil
}
