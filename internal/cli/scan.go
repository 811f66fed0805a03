package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tooldock-labs/tooldock/internal/scan"
)

var (
	scanProject string
	scanJSON    bool
)

func init() {
	scanCmd.Flags().StringVar(&scanProject, "project", "", "Check importability against this project's scope instead of global")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output candidates as JSON")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Discover importable artifacts in a directory",
	Long: `Run the format detectors over a directory and list the artifacts they
recognize. Candidates whose name already exists in the destination scope are
filtered out, so everything shown can be imported as-is. Defaults to the
current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	candidates, err := importableCandidates(dir, scanProject)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing importable found.")
		return nil
	}

	if scanJSON {
		data, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tTYPE\tNAME")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.SourceLabel, c.Type, c.Name)
	}
	return w.Flush()
}

// importableCandidates scans dir and drops candidates colliding with names
// already present in the destination scope.
func importableCandidates(dir, projectFlag string) ([]scan.Candidate, error) {
	candidates, err := scan.DefaultScanner().Scan(dir)
	if err != nil {
		return nil, err
	}

	app, err := newApp()
	if err != nil {
		return nil, err
	}

	sc, project := scopeOf(projectFlag)
	existing, err := app.store.Artifacts("", sc, project)
	if err != nil {
		return nil, err
	}
	return scan.Importable(candidates, existing), nil
}
