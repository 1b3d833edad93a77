package cmd

import (
	"fmt"

	"codebridge/internal/theme"
)

// SessionsStatsCmd prints session statistics
type SessionsStatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the stats command
func (s *SessionsStatsCmd) Run(cli *CLI) error {
	stats := cli.Container.SessionService.Stats()

	if s.Format == "json" {
		return printJSON(stats)
	}

	fmt.Println(theme.TitleStyle.Render("Sessions"))
	fmt.Printf("%s %d\n", theme.LabelStyle.Render("Total:"), stats.TotalSessions)
	fmt.Printf("%s %d\n", theme.LabelStyle.Render("Active:"), stats.ActiveSessions)
	fmt.Printf("%s %d\n", theme.LabelStyle.Render("Users:"), stats.UniqueUsers)
	if stats.OldestCreatedAt != nil {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Oldest:"), stats.OldestCreatedAt.Local().Format(timeLayout))
	}
	if stats.NewestCreatedAt != nil {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Newest:"), stats.NewestCreatedAt.Local().Format(timeLayout))
	}
	if err := cli.Container.SessionService.LastPersistError(); err != nil {
		fmt.Printf("%s %v\n", theme.ErrorStyle.Render("Last write failed:"), err)
	}
	return nil
}
