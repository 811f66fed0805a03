package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/config"
	"github.com/tooldock-labs/tooldock/internal/syncer"
)

var (
	syncTargets []string
	syncProject string
	syncJSON    bool
)

func init() {
	syncCmd.Flags().StringSliceVar(&syncTargets, "target", nil, "Target tools to sync into (repeatable or comma-separated)")
	syncCmd.Flags().StringVar(&syncProject, "project", "", "Sync the project's scope into project-local configs")
	syncCmd.Flags().BoolVar(&syncJSON, "json", false, "Output results as JSON")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync <artifact>...",
	Short: "Write artifacts into target tool configs",
	Long: `Write the named registry artifacts into each target's config file. Every
requested target gets its own result; one target failing never blocks the
others, and re-running a sync is a no-op.

Without --target, the configured default targets (sync.default_targets) are
used, falling back to every target whose config file already exists.

Example:
  tooldock sync github-server --target cursor --target zed
  tooldock sync reviewer linter --project ~/src/myapp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(syncProject)
	targets, err := chooseTargets(app, syncTargets, sc, project)
	if err != nil {
		return err
	}

	results, err := app.engine.Sync(args, targets, sc, project)
	if err != nil {
		return err
	}
	return printResults(cmd, results, syncJSON)
}

// chooseTargets applies the target fallback chain: explicit flag, configured
// defaults, then every target whose config exists in the scope.
func chooseTargets(app *app, flag []string, sc artifact.Scope, project string) ([]string, error) {
	if len(flag) > 0 {
		return flag, nil
	}

	config.Load()
	if defaults := config.DefaultTargets(); len(defaults) > 0 {
		return defaults, nil
	}

	view, err := app.resolver.Resolve(sc, project)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, d := range view.Eligible() {
		names = append(names, d.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no targets: pass --target or create a target config first")
	}
	return names, nil
}

func printResults(cmd *cobra.Command, results []syncer.Result, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, r := range results {
			icon := "OK"
			if !r.Success {
				icon = "!!"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %-16s %s\n", icon, r.Target+":", r.Message)
		}
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	return nil
}
