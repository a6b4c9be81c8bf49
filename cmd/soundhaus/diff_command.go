package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soundhaus/internal/diffengine"
	"soundhaus/internal/report"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput        bool
		allowNameFallback bool
	)

	cmd := &cobra.Command{
		Use:   "diff <local> <reference>",
		Short: "Report per-track instrument changes between two project revisions",
		Long: `Diff compares a local project file against a reference revision and
reports which tracks changed instruments. Tracks are matched by id when the
format provides one, then by display name, then by position. Only changed
tracks are reported; added and removed tracks are not.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("allow-name-fallback") {
				allowNameFallback = cfg.Diff.AllowTrackNameFallback
			}

			local, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read local file: %w", err)
			}
			reference, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read reference file: %w", err)
			}

			result := diffengine.Compare(local, reference, ctx.engineOptions(allowNameFallback))

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), report.RenderDiff(result, renderOptions(cmd)))
			}

			if !result.OK {
				return errors.New(result.Reason)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the raw result as JSON")
	cmd.Flags().BoolVar(&allowNameFallback, "allow-name-fallback", false,
		"Let a track's display name stand in when no instrument evidence exists")

	return cmd
}
