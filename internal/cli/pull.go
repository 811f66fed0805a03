package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pullProject string

func init() {
	pullCmd.Flags().StringVar(&pullProject, "project", "", "Destination project (required)")
	rootCmd.AddCommand(pullCmd)
}

var pullCmd = &cobra.Command{
	Use:   "pull <name>... --project <path>",
	Short: "Copy global artifacts into a project",
	Long: `Copy named global artifacts into a project's scope. Each copy is a new
record with the same name and payload; the global original is untouched. A
name already present in the project is a conflict and is skipped.

Example:
  tooldock pull github-server reviewer --project ~/src/myapp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPull,
}

func runPull(cmd *cobra.Command, args []string) error {
	if pullProject == "" {
		return fmt.Errorf("--project is required")
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	outcomes := app.service.BulkImportFromGlobal(args, pullProject)

	failed := 0
	for _, o := range outcomes {
		if o.Success {
			fmt.Fprintf(cmd.OutOrStdout(), "  [OK] %s\n", o.Name)
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "  [!!] %s: %s\n", o.Name, o.Message)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d artifacts failed to pull", failed, len(outcomes))
	}
	return nil
}
