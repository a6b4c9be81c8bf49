package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"soundhaus/internal/report"
)

// renderOptions picks table styling based on whether stdout is a terminal.
// Redirected output always gets plain ASCII borders.
func renderOptions(cmd *cobra.Command) report.Options {
	if file, ok := cmd.OutOrStdout().(*os.File); ok {
		return report.Options{Unicode: isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())}
	}
	return report.Options{}
}

func humanBytes(size int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case size >= mib:
		return fmt.Sprintf("%.1f MiB", float64(size)/float64(mib))
	case size >= kib:
		return fmt.Sprintf("%.1f KiB", float64(size)/float64(kib))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
