package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tooldock-labs/tooldock/internal/artifact"
)

var addProject string

func init() {
	addCmd.Flags().StringVar(&addProject, "project", "", "Add into this project's scope instead of global")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <definition.yaml>",
	Short: "Add an artifact from a YAML definition",
	Long: `Validate a YAML artifact definition against the schema and add it to the
registry. The definition's scope defaults to global; pass --project to add it
into a project's scope instead.

Example:
  tooldock add github-server.yaml
  tooldock add review-skill.yaml --project ~/src/myapp`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading definition %s: %w", args[0], err)
	}

	a, err := artifact.ParseDefinition(data)
	if err != nil {
		return err
	}

	if addProject != "" {
		a.Scope = artifact.ScopeProject
		a.Project = addProject
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.service.Add(a); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q (%s scope)\n", a.Type, a.Name, a.Scope)
	return nil
}
