package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameProject string

func init() {
	renameCmd.Flags().StringVar(&renameProject, "project", "", "Rename in this project's scope instead of global")
	rootCmd.AddCommand(renameCmd)
}

var renameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename an artifact",
	Long: `Change an artifact's name in place. The record keeps its identity, so
nothing is deleted or recreated.`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(renameProject)
	a, err := app.service.Find(args[0], sc, project)
	if err != nil {
		return err
	}
	if err := app.service.Rename(a.Key(), args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", args[0], args[1])
	return nil
}
