package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"soundhaus/internal/diffengine"
)

// RenderDiff renders the comparison result as plain text. Not-ok results
// collapse to a single diagnostic line.
func RenderDiff(result diffengine.Result, opts Options) string {
	if !result.OK {
		return fmt.Sprintf("comparison failed: %s\n", result.Reason)
	}
	if len(result.Changes) == 0 {
		return "No instrument changes detected.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d track(s) changed\n\n", len(result.Changes))

	tw := newWriter(opts)
	tw.AppendHeader(table.Row{"Track", "Before", "After"})
	for _, change := range result.Changes {
		tw.AppendRow(table.Row{
			trackLabel(change),
			SideText(change.Before),
			SideText(change.After),
		})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}

// SideText flattens one side's evidence into a display string. A track name
// hint is marked as such so renames are not mistaken for instrument names.
func SideText(side diffengine.ChangeSide) string {
	if side.Name != "" {
		return side.Name
	}
	if side.TrackNameHint != "" {
		return fmt.Sprintf("(track %q)", side.TrackNameHint)
	}
	return "-"
}

func trackLabel(change diffengine.TrackChange) string {
	name := change.TrackName
	if change.BeforeTrackName != "" && change.BeforeTrackName != change.AfterTrackName {
		name = fmt.Sprintf("%s (was %s)", change.AfterTrackName, change.BeforeTrackName)
	}
	if change.TrackID != "" {
		return fmt.Sprintf("%s [#%s]", name, change.TrackID)
	}
	return name
}
