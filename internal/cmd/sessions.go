package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Create   SessionsCreateCmd   `cmd:"create" aliases:"add" help:"Start a new session for a user"`
	End      SessionsEndCmd      `cmd:"end" help:"End a session by token or a user's active session"`
	Export   SessionsExportCmd   `cmd:"export" help:"Export stored sessions as JSON"`
	Import   SessionsImportCmd   `cmd:"import" help:"Import sessions from a JSON export"`
	List     SessionsListCmd     `cmd:"list" help:"List sessions" default:"1"`
	Show     SessionsShowCmd     `cmd:"show" aliases:"view" help:"Show a session by token or a user's active session"`
	Stats    SessionsStatsCmd    `cmd:"stats" help:"Show session statistics"`
	Touch    SessionsTouchCmd    `cmd:"touch" help:"Mark a session as used now"`
	Validate SessionsValidateCmd `cmd:"validate" help:"Check that a token is valid for a user"`
}
