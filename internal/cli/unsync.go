package cli

import (
	"github.com/spf13/cobra"
)

var (
	unsyncTargets []string
	unsyncProject string
	unsyncJSON    bool
)

func init() {
	unsyncCmd.Flags().StringSliceVar(&unsyncTargets, "target", nil, "Target tools to detach from (repeatable or comma-separated)")
	unsyncCmd.Flags().StringVar(&unsyncProject, "project", "", "Detach from project-local configs")
	unsyncCmd.Flags().BoolVar(&unsyncJSON, "json", false, "Output results as JSON")
	rootCmd.AddCommand(unsyncCmd)
}

var unsyncCmd = &cobra.Command{
	Use:   "unsync <artifact>",
	Short: "Remove an artifact from target tool configs",
	Long: `Remove the named artifact's entries from each target's config file. The
registry record itself is untouched. Detaching from a target that never had
the artifact succeeds quietly.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnsync,
}

func runUnsync(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(unsyncProject)
	targets, err := chooseTargets(app, unsyncTargets, sc, project)
	if err != nil {
		return err
	}

	results, err := app.engine.RemoveFromTarget(args[0], targets, sc, project)
	if err != nil {
		return err
	}
	return printResults(cmd, results, unsyncJSON)
}
