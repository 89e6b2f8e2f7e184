package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/driftdev/drift/internal/plugins"
	"github.com/driftdev/drift/internal/plugins/builtin"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List registered plugins and their capabilities",
	Long: `List every plugin available to the compiler together with the single
pipeline capability it provides and, where declared, its default build script.`,
	RunE: runPlugins,
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
}

// newRegistry builds the plugin registry for this process. Plugins are
// compiled into the drift binary; external module loading is handled by the
// host embedding the compiler, not by the CLI.
func newRegistry() *plugins.Registry {
	return plugins.NewRegistry()
}

func runPlugins(cmd *cobra.Command, args []string) error {
	registry := newRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	titler := cases.Title(language.English)
	fmt.Fprintln(w, "NAME\tCAPABILITY\tDEFAULT SCRIPT\tORIGIN")

	// The built-in transpiler is always available; it is pre-bound by the
	// compiler rather than registered.
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		builtin.TranspilerName,
		titler.String(string(plugins.CapabilityTransform)),
		"",
		"built-in",
	)

	for _, p := range registry.List() {
		caps := plugins.Capabilities(p)
		names := make([]string, len(caps))
		for i, c := range caps {
			names[i] = titler.String(string(c))
		}

		defaultScript := ""
		if dsp, ok := p.(plugins.DefaultScriptProvider); ok {
			defaultScript = dsp.DefaultBuildScript()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.Name(),
			strings.Join(names, ","),
			defaultScript,
			"registered",
		)
	}

	fmt.Fprintf(w, "\nTotal: %d registered plugins\n", registry.Len())
	return nil
}
