package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hypergrid/pkg/ansi"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the privileged style classes",
	Long: `Prints every privileged ansi-* class together with the SGR code it
emits on the terminal and the CSS it maps to in generated stylesheets.`,
	RunE: runColors,
}

func runColors(cmd *cobra.Command, args []string) error {
	data := pterm.TableData{
		{"Class", "SGR", "CSS"},
	}
	for _, class := range ansi.Classes() {
		code, _ := ansi.Code(class)
		data = append(data, []string{class, code, classCSS(class)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// classCSS maps a privileged class to the declaration the demo stylesheet
// uses for it.
func classCSS(class string) string {
	switch class {
	case "ansi-bold":
		return "font-weight: bold"
	case "ansi-dim":
		return "opacity: 0.5"
	case "ansi-underline":
		return "text-decoration: underline"
	}
	if name, ok := strings.CutPrefix(class, "ansi-bg-"); ok {
		return "background-color: " + ansi.Background[name].HTML
	}
	if name, ok := strings.CutPrefix(class, "ansi-"); ok {
		return "color: " + ansi.Foreground[name].HTML
	}
	return ""
}
