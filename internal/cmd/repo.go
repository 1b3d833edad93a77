package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"codebridge/internal/domain"
	"codebridge/internal/logging"
	"codebridge/internal/theme"
)

// RepoCmd mirrors and browses repositories
type RepoCmd struct {
	Clone RepoCloneCmd `cmd:"clone" aliases:"update" help:"Clone a repository, or update an existing mirror"`
	Ls    RepoLsCmd    `cmd:"ls" help:"List a directory of a mirrored repository"`
	Show  RepoShowCmd  `cmd:"show" help:"Show the index of a mirrored repository"`
}

// RepoCloneCmd clones or updates a mirror
type RepoCloneCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	URL    string `arg:"" help:"Repository as https://host/owner/repo or owner/repo"`
	User   int64  `help:"Chat user ID owning the mirror" required:""`
}

// Run executes the clone command
func (r *RepoCloneCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing repo clone command", "user_id", r.User, "url", r.URL)

	result, err := cli.Container.RepoService.CloneOrUpdate(context.Background(), r.User, r.URL)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		return printJSON(result)
	}

	fmt.Printf("%s %s (%s)\n", theme.RepoNameStyle.Render(result.Owner+"/"+result.Repo), result.Action, result.URL)
	fmt.Printf("Path: %s\n", result.LocalPath)
	printIndex(result.Index)
	return nil
}

// RepoShowCmd prints the index of an existing mirror
type RepoShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	URL    string `arg:"" help:"Repository as https://host/owner/repo or owner/repo"`
	User   int64  `help:"Chat user ID owning the mirror" required:""`
}

// Run executes the show command
func (r *RepoShowCmd) Run(cli *CLI) error {
	record, err := cli.Container.RepoService.Activate(context.Background(), r.User, r.URL)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		return printJSON(record)
	}

	fmt.Printf("%s (%s)\n", theme.RepoNameStyle.Render(record.Owner+"/"+record.Repo), record.URL)
	fmt.Printf("Path: %s\n", record.LocalPath)
	printIndex(record.Index)
	return nil
}

// RepoLsCmd lists a directory inside an existing mirror
type RepoLsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Path   string `arg:"" optional:"" help:"Directory relative to the repository root"`
	Repo   string `help:"Repository as https://host/owner/repo or owner/repo" required:""`
	User   int64  `help:"Chat user ID owning the mirror" required:""`
}

// Run executes the ls command
func (r *RepoLsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.RepoService

	if _, err := service.Activate(ctx, r.User, r.Repo); err != nil {
		return err
	}

	files, ok := service.ListFiles(r.User, r.Path)
	if !ok {
		return fmt.Errorf("no active repository for user %d", r.User)
	}

	if r.Format == "json" {
		return printJSON(files)
	}
	return r.printTable(files)
}

func (r *RepoLsCmd) printTable(files []domain.FileEntry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tLANGUAGE\tPATH")
	for _, f := range files {
		name := f.Name
		size := fmt.Sprintf("%d", f.SizeBytes)
		if f.IsDir {
			name = theme.DirStyle.Render(f.Name + "/")
			size = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, size, f.Language, f.RelativePath)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d entries\n", len(files))
	return nil
}

func printIndex(index domain.IndexMetadata) {
	fmt.Printf("%s %d files, %d directories\n", theme.LabelStyle.Render("Index:"), index.TotalFiles, index.TotalDirs)
	if len(index.Languages) > 0 {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Languages:"), strings.Join(index.Languages, ", "))
	}
	if len(index.Extensions) > 0 {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Extensions:"), strings.Join(index.Extensions, " "))
	}
	if index.Error != "" {
		fmt.Printf("%s %s\n", theme.ErrorStyle.Render("Indexing error:"), index.Error)
	}
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Indexed:"), index.IndexedAt.Local().Format(timeLayout))
}
