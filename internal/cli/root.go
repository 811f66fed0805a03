package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/branding"
	"github.com/tooldock-labs/tooldock/internal/config"
	"github.com/tooldock-labs/tooldock/internal/registry"
	"github.com/tooldock-labs/tooldock/internal/scope"
	"github.com/tooldock-labs/tooldock/internal/store"
	"github.com/tooldock-labs/tooldock/internal/syncer"
	"github.com/tooldock-labs/tooldock/internal/target"
	"github.com/tooldock-labs/tooldock/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a single registry of AI-tool artifacts (MCP servers,
skills, workflows, LLM provider configs) and syncs chosen subsets of them into
the native config files of Claude Code, Claude Desktop, Cursor, VS Code, Zed,
and Codex.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Commands that print machine output skip the banner.
		name := cmd.Name()
		if name == "version" || name == "config" || name == "completion" || name == "help" {
			return
		}

		config.Load()
		if config.Get(config.KeyUpdateCheck) == "false" {
			return
		}

		// Non-blocking banner from the cached version check.
		ch := updater.New(buildVersion)
		ch.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// app bundles the wired components every command works with.
type app struct {
	store    store.Store
	targets  *target.Registry
	engine   *syncer.Engine
	service  *registry.Service
	resolver *scope.Resolver
}

func newApp() (*app, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("resolving registry path: %w", err)
	}

	s := store.NewFileStore(path)
	targets := target.DefaultRegistry()
	engine := syncer.New(s, targets)

	return &app{
		store:    s,
		targets:  targets,
		engine:   engine,
		service:  registry.NewService(s, engine),
		resolver: scope.NewResolver(s, targets),
	}, nil
}

// scopeOf maps the --project flag onto a scope: set means project scope at
// that path, unset means global.
func scopeOf(projectFlag string) (artifact.Scope, string) {
	if projectFlag != "" {
		return artifact.ScopeProject, projectFlag
	}
	return artifact.ScopeGlobal, ""
}
