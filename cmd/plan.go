package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/driftdev/drift/internal/compiler"
	"github.com/driftdev/drift/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Compile and print the execution plan",
	Long: `Compile the script map and plugin set into the ordered execution plan
the dev server and builder consume, and print it.

Examples:
  drift plan                      # Print the plan in table format
  drift plan -f json              # Output as JSON
  drift plan -f yaml              # Output as YAML
  drift plan --bundle             # Require a bundle script to exist`,
	RunE: runPlan,
}

var (
	planFormat string
	planBundle bool
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planFormat, "format", "f", "table", "output format (table, json, yaml)")
	planCmd.Flags().BoolVar(&planBundle, "bundle", false, "require a bundle script in the plan")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	input := cfg.CompilerInput(newRegistry())
	if planBundle {
		input.Bundle = true
	}

	plan, err := compiler.Compile(input)
	if err != nil {
		return fmt.Errorf("failed to compile plan: %w", err)
	}

	switch strings.ToLower(planFormat) {
	case "json":
		return outputPlanJSON(plan)
	case "yaml":
		return outputPlanYAML(plan)
	case "table":
		return outputPlanTable(plan)
	default:
		return fmt.Errorf("unsupported format: %s", planFormat)
	}
}

// planRows flattens the plan for serialization. Args are rendered as
// from→to pairs; the plugin column holds the bound module reference.
func planRows(plan *compiler.Plan) []map[string]interface{} {
	rows := make([]map[string]interface{}, len(plan.Scripts))
	for i, script := range plan.Scripts {
		row := map[string]interface{}{
			"id":      script.ID,
			"type":    string(script.Type),
			"match":   script.Match,
			"command": script.Command,
		}
		if script.WatchCommand != "" {
			row["watch"] = script.WatchCommand
		}
		if script.Mount != nil {
			row["from"] = script.Mount.FromDisk
			row["to"] = script.Mount.ToURL
		}
		if script.Proxy != nil {
			row["from"] = script.Proxy.FromURL
			row["to"] = script.Proxy.ToURL
		}
		if script.Plugin != nil {
			row["plugin"] = script.Plugin.Name()
		}
		rows[i] = row
	}
	return rows
}

func outputPlanJSON(plan *compiler.Plan) error {
	output := map[string]interface{}{
		"scripts":           planRows(plan),
		"known_entrypoints": plan.KnownEntrypoints,
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputPlanYAML(plan *compiler.Plan) error {
	output := map[string]interface{}{
		"scripts":           planRows(plan),
		"known_entrypoints": plan.KnownEntrypoints,
	}
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(output)
}

func outputPlanTable(plan *compiler.Plan) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ORDER\tID\tTYPE\tMATCH\tCOMMAND\tPLUGIN")

	for i, script := range plan.Scripts {
		pluginName := ""
		if script.Plugin != nil {
			pluginName = script.Plugin.Name()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			script.ID,
			script.Type,
			strings.Join(script.Match, ","),
			script.Command,
			pluginName,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d scripts, %d known entrypoints\n",
		len(plan.Scripts), len(plan.KnownEntrypoints))

	return nil
}
