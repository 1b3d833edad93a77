package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"codebridge/internal/domain"
)

// SessionsImportCmd adds sessions from a JSON export. Existing tokens are kept.
type SessionsImportCmd struct {
	File string `arg:"" help:"Export file ('-' reads stdin)"`
}

// Run executes the import command
func (s *SessionsImportCmd) Run(cli *CLI) error {
	data, err := readInput(s.File)
	if err != nil {
		return err
	}

	var records []domain.Session
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.File, err)
	}

	imported := cli.Container.SessionService.Import(context.Background(), records)
	fmt.Printf("Imported %d of %d sessions\n", imported, len(records))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
