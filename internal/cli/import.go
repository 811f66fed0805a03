package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tooldock-labs/tooldock/internal/scan"
)

var importProject string

func init() {
	importCmd.Flags().StringVar(&importProject, "project", "", "Import into this project's scope instead of global")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <dir> [name]...",
	Short: "Import discovered artifacts into the registry",
	Long: `Scan a directory and commit discovered artifacts into the registry. With
names, only those candidates are imported; without, every importable candidate
is. One candidate failing does not block the rest.

Example:
  tooldock import ~/src/myapp
  tooldock import ~/src/myapp github-server reviewer --project ~/src/myapp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	candidates, err := importableCandidates(args[0], importProject)
	if err != nil {
		return err
	}

	selected := candidates
	if len(args) > 1 {
		selected = selectCandidates(candidates, args[1:])
	}
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
		return nil
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(importProject)
	report := scan.Commit(app.store, selected, sc, project)

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d artifact(s)\n", report.Imported)
	for _, e := range report.Errors {
		fmt.Fprintf(cmd.OutOrStdout(), "  [!!] %s: %s\n", e.Name, e.Reason)
	}
	return report.CommitError()
}

func selectCandidates(candidates []scan.Candidate, names []string) []scan.Candidate {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var selected []scan.Candidate
	for _, c := range candidates {
		if wanted[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected
}
