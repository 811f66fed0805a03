package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tooldock-labs/tooldock/internal/artifact"
)

var (
	listTypeFilter string
	listProject    string
	listJSON       bool
)

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by type (server, skill, workflow, llm_provider)")
	listCmd.Flags().StringVar(&listProject, "project", "", "List this project's scope instead of global")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry artifacts",
	Long: `List the artifacts in a scope. The SOURCES column shows which target
configs currently carry each artifact, read live from the config files.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var typeFilter artifact.Type
	if listTypeFilter != "" {
		t, ok := artifact.ParseType(listTypeFilter)
		if !ok {
			return fmt.Errorf("%w: unknown type %q", artifact.ErrValidation, listTypeFilter)
		}
		typeFilter = t
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	sc, project := scopeOf(listProject)
	artifacts, err := app.service.List(typeFilter, sc, project)
	if err != nil {
		return err
	}

	if len(artifacts) == 0 {
		if listTypeFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No artifacts matching --type=%s\n", listTypeFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No artifacts in this scope yet.")
		}
		return nil
	}

	if listJSON {
		data, err := json.MarshalIndent(artifacts, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tSOURCES")
	for _, a := range artifacts {
		sources := "-"
		if len(a.Sources) > 0 {
			sources = strings.Join(a.Sources, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Type, a.Name, sources)
	}
	return w.Flush()
}
