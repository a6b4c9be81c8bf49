package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soundhaus/internal/diffengine"
	"soundhaus/internal/doccache"
	"soundhaus/internal/logging"
	"soundhaus/internal/projdoc"
	"soundhaus/internal/report"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Describe one project file: format, tracks, instruments, samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			summary, err := summarizeWithCache(cmd, ctx, data, cfg.Cache.Enabled && !noCache, cfg.Cache.Path)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderSummary(summary, renderOptions(cmd)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the summary as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the summary cache")

	return cmd
}

// summarizeWithCache consults the content-hash keyed cache before paying for
// a full decode. Cache failures degrade to an uncached summary.
func summarizeWithCache(cmd *cobra.Command, ctx *commandContext, data []byte, useCache bool, cachePath string) (*diffengine.Summary, error) {
	opts := ctx.engineOptions(false)

	if !useCache {
		return diffengine.Summarize(data, opts)
	}

	logger := ctx.loggerValue()
	store, err := doccache.Open(cachePath, logger)
	if err != nil {
		logger.Warn("cache unavailable, summarizing uncached", logging.Error(err))
		return diffengine.Summarize(data, opts)
	}
	defer store.Close()

	doc, err := projdoc.Decode(data, projdoc.Limits{MaxDecompressedBytes: opts.MaxDecompressedBytes})
	if err != nil {
		return nil, err
	}

	if cached, found, err := store.Lookup(cmd.Context(), doc.Hash); err == nil && found {
		var summary diffengine.Summary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			logger.Debug("summary cache hit", logging.String("content_hash", doc.Hash))
			return &summary, nil
		}
	}

	summary, err := diffengine.Summarize(data, opts)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(summary); err == nil {
		if err := store.Save(cmd.Context(), doc.Hash, string(encoded)); err != nil {
			logger.Warn("cache save failed", logging.Error(err))
		}
	}
	return summary, nil
}
