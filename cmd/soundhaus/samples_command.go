package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soundhaus/internal/diffengine"
	"soundhaus/internal/report"
)

func newSamplesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "samples <file>",
		Short: "List audio sample usage within one project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			summary, err := diffengine.Summarize(data, ctx.engineOptions(false))
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summary.Samples)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderSamples(summary.Samples, renderOptions(cmd)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit sample usage as JSON")

	return cmd
}
