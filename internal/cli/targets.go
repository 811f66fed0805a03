package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	targetsProject string
	targetsJSON    bool
)

func init() {
	targetsCmd.Flags().StringVar(&targetsProject, "project", "", "Describe project-local configs instead of global ones")
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show known target tools and their config state",
	Long: `List every supported target tool with its config path, whether the config
file exists, and how many entries it currently holds. Targets without a config
file are shown but not eligible for sync until the file exists.`,
	RunE: runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(targetsProject)
	view, err := app.resolver.Resolve(sc, project)
	if err != nil {
		return err
	}

	if targetsJSON {
		data, err := json.MarshalIndent(view.Targets, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if len(view.Targets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No targets in this scope.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tCONFIG\tENTRIES")
	for _, d := range view.Targets {
		configState := d.ConfigPath
		if !d.ConfigExists {
			configState += " (missing)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", d.Name, d.Category, configState, d.EntryCount)
	}
	return w.Flush()
}
