package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeProject string

func init() {
	removeCmd.Flags().StringVar(&removeProject, "project", "", "Remove from this project's scope instead of global")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an artifact from the registry",
	Long: `Delete the named artifact's registry record. Copies already written into
target configs stay where they are; use unsync to detach those.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(removeProject)
	a, err := app.service.Find(args[0], sc, project)
	if err != nil {
		return err
	}
	if err := app.service.Remove(a.Key(), a.Name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q\n", a.Type, a.Name)
	return nil
}
