package cmd

import (
	"encoding/json"
	"fmt"

	"codebridge/internal/domain"
	"codebridge/internal/theme"
)

const timeLayout = "2006-01-02 15:04:05"

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printSession(session *domain.Session) {
	state := theme.ActiveStyle.Render("active")
	if !session.Active {
		state = theme.InactiveStyle.Render("inactive")
	}

	fmt.Printf("Token: %s\n", theme.TitleStyle.Render(session.Token))
	fmt.Printf("User: %d (%s)\n", session.UserID, session.UserName)
	fmt.Printf("State: %s\n", state)
	fmt.Printf("Working Dir: %s\n", session.WorkingDir)
	fmt.Printf("Created: %s\n", theme.MutedStyle.Render(session.CreatedAt.Local().Format(timeLayout)))
	fmt.Printf("Last Used: %s\n", theme.MutedStyle.Render(session.LastUsedAt.Local().Format(timeLayout)))
}

func activeMark(active bool) string {
	if active {
		return "✓"
	}
	return ""
}
