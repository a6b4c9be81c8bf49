package liveset

import (
	"fmt"
	"strings"

	"soundhaus/internal/xmltree"
)

// TrackKind discriminates the track variants the comparator works with.
type TrackKind string

const (
	KindAudio  TrackKind = "audio"
	KindMidi   TrackKind = "midi"
	KindReturn TrackKind = "return"
)

// DefaultName returns the positional display name used when a track carries
// no usable name of its own. index is 1-based within the kind group.
func (k TrackKind) DefaultName(index int) string {
	switch k {
	case KindMidi:
		return fmt.Sprintf("MIDI %d", index)
	case KindReturn:
		return fmt.Sprintf("Return %d", index)
	default:
		return fmt.Sprintf("Audio %d", index)
	}
}

// Track is one extracted audio or MIDI track.
type Track struct {
	Kind TrackKind
	// ID is the format-defined identifier; empty when the document omits it.
	ID string
	// Name is the resolved display name (never empty; falls back to a
	// positional default).
	Name string
	// Index is the 1-based position within the track's kind group.
	Index int
	// Node references the source tree so resolvers can re-query the track.
	// Valid only as long as the owning tree is retained.
	Node *xmltree.Node
}

// Instrument describes a track's main instrument device. Every field is
// optional; a track with no locatable device chain has no Instrument at all.
type Instrument struct {
	// DeviceType is the device element name, e.g. "Operator".
	DeviceType string
	// Preset identifies the loaded preset, favoring the explicit preset-name
	// field and degrading to preset file references.
	Preset string
	// Name is the friendliest resolvable label for display.
	Name string
	// SourcePath is the preset/sample file reference, when one exists.
	SourcePath string
}

// Info carries document-level metadata used by the content summary.
type Info struct {
	MajorVersion string
	MinorVersion string
	Creator      string
}

// FormatVersion renders "major.minor", degrading to whichever half exists.
func (i Info) FormatVersion() string {
	major := strings.TrimSpace(i.MajorVersion)
	minor := strings.TrimSpace(i.MinorVersion)
	switch {
	case major != "" && minor != "":
		return major + "." + minor
	case major != "":
		return major
	case minor != "":
		return minor
	default:
		return "unknown"
	}
}

// Set is the extracted model of one document revision.
type Set struct {
	Info Info
	// Tracks holds audio and MIDI tracks in document order.
	Tracks []Track
	// ReturnTrackCount counts return tracks, which carry no instruments the
	// comparator cares about but appear in the content summary.
	ReturnTrackCount int
}

// AudioTrackCount returns the number of audio tracks in the set.
func (s *Set) AudioTrackCount() int { return s.countKind(KindAudio) }

// MidiTrackCount returns the number of MIDI tracks in the set.
func (s *Set) MidiTrackCount() int { return s.countKind(KindMidi) }

func (s *Set) countKind(kind TrackKind) int {
	count := 0
	for _, track := range s.Tracks {
		if track.Kind == kind {
			count++
		}
	}
	return count
}
