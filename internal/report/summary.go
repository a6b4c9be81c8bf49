package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"soundhaus/internal/diffengine"
	"soundhaus/internal/sampleusage"
)

// Options controls presentation details.
type Options struct {
	// Unicode selects rounded table borders; plain ASCII otherwise.
	Unicode bool
}

var titleCaser = cases.Title(language.Und)

// RenderSummary renders the full plain-text content summary for one
// document revision.
func RenderSummary(summary *diffengine.Summary, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Format version: %s\n", summary.FormatVersion)
	fmt.Fprintf(&b, "Creator:        %s\n", orDash(summary.Creator))
	fmt.Fprintf(&b, "Tracks:         %d audio / %d midi / %d return\n",
		summary.AudioTracks, summary.MidiTracks, summary.ReturnTracks)

	if len(summary.Tracks) > 0 {
		b.WriteString("\n")
		b.WriteString(renderTrackTable(summary, opts))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderSamples(summary.Samples, opts))

	return b.String()
}

// RenderSamples renders the sample-usage section on its own, shared with the
// samples subcommand.
func RenderSamples(usage sampleusage.Usage, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sample usage: %d clip occurrence(s)\n", usage.Total)
	if len(usage.Records) > 0 {
		b.WriteString(renderSampleTable(usage, opts))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTrackTable(summary *diffengine.Summary, opts Options) string {
	tw := newWriter(opts)
	tw.AppendHeader(table.Row{"Kind", "Track", "Instrument"})
	for _, row := range summary.Tracks {
		tw.AppendRow(table.Row{titleCaser.String(string(row.Kind)), row.Name, orDash(row.Instrument)})
	}
	return tw.Render()
}

func renderSampleTable(usage sampleusage.Usage, opts Options) string {
	tw := newWriter(opts)
	tw.AppendHeader(table.Row{"Sample", "Identity", "Count"})
	for _, record := range usage.Records {
		tw.AppendRow(table.Row{record.Name, record.Identity, record.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func newWriter(opts Options) table.Writer {
	tw := table.NewWriter()
	if opts.Unicode {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	return tw
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
