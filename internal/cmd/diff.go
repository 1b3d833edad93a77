package cmd

import (
	"fmt"

	"codebridge/internal/diff"
)

// DiffCmd prints a unified diff of two files
type DiffCmd struct {
	Context int    `help:"Lines of context around each change" short:"U" default:"3"`
	Format  string `help:"Output format" enum:"terminal,markdown,raw" default:"terminal"`
	Old     string `arg:"" help:"Old version ('-' reads stdin)"`
	New     string `arg:"" help:"New version ('-' reads stdin)"`
}

// Run executes the diff command
func (d *DiffCmd) Run() error {
	if d.Old == "-" && d.New == "-" {
		return fmt.Errorf("only one side can be read from stdin")
	}

	oldText, err := readInput(d.Old)
	if err != nil {
		return err
	}
	newText, err := readInput(d.New)
	if err != nil {
		return err
	}

	renderer, err := diff.RendererFor(d.Format)
	if err != nil {
		return err
	}

	text := diff.Unified(string(oldText), string(newText), diff.Options{
		Context:  d.Context,
		FromFile: d.Old,
		ToFile:   d.New,
	})
	fmt.Println(diff.Render(text, renderer))
	return nil
}
