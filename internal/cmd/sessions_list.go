package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"codebridge/internal/domain"
)

// SessionsListCmd lists sessions
type SessionsListCmd struct {
	Active bool   `help:"Only list sessions flagged active" short:"a"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	User   int64  `help:"Only list this user's sessions, newest first"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	service := cli.Container.SessionService

	var sessions []domain.Session
	switch {
	case s.User != 0:
		sessions = service.ListUserSessions(s.User)
	case s.Active:
		sessions = service.ListActiveSessions()
	default:
		sessions = service.Export()
	}
	if s.User != 0 && s.Active {
		sessions = filterActive(sessions)
	}

	if s.Format == "json" {
		return printJSON(sessions)
	}
	return s.printTable(sessions)
}

func filterActive(sessions []domain.Session) []domain.Session {
	active := make([]domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.Active {
			active = append(active, sess)
		}
	}
	return active
}

func (s *SessionsListCmd) printTable(sessions []domain.Session) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tUSER\tNAME\tACTIVE\tWORKING DIR\tCREATED\tLAST USED")
	for _, sess := range sessions {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			sess.Token,
			sess.UserID,
			sess.UserName,
			activeMark(sess.Active),
			sess.WorkingDir,
			sess.CreatedAt.Local().Format(timeLayout),
			sess.LastUsedAt.Local().Format(timeLayout))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}
