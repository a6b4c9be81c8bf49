package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soundhaus/internal/doccache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the document summary cache",
	}
	cmd.AddCommand(newCacheStatusCommand(ctx))
	cmd.AddCommand(newCacheClearCommand(ctx))
	return cmd
}

func newCacheStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show cache location, entry count, and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Path:    %s\n", stats.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\n", stats.Entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Size:    %s\n", humanBytes(stats.SizeBytes))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	}
}

func openCache(ctx *commandContext) (*doccache.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	return doccache.Open(cfg.Cache.Path, ctx.loggerValue())
}
