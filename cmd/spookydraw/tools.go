package spookydraw

import (
	"fmt"
	"text/tabwriter"

	"github.com/dasdy/spookydraw/model"
	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the drawing tools and whether they are enabled",
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		return printTools(cmd, settings)
	},
}

func printTools(cmd *cobra.Command, settings *model.AppSettings) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "TOOL\tLABEL\tSTATE")

	for _, tool := range model.AllTools() {
		state := "enabled"

		switch {
		case settings.ToolDisabled(tool):
			state = "disabled"
		case tool == settings.DefaultTool:
			state = "default"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", tool, tool.Label(), state)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not print tools: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
