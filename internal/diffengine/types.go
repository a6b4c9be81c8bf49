package diffengine

import (
	"log/slog"

	"soundhaus/internal/liveset"
	"soundhaus/internal/sampleusage"
)

// Options configures a comparison or summary call.
type Options struct {
	// AllowTrackNameFallback lets a track's display name stand in as the
	// effective instrument label when no instrument evidence exists on a
	// side. A renamed track then reads as an instrument change, so callers
	// must opt in explicitly.
	AllowTrackNameFallback bool

	// MaxDecompressedBytes bounds the inflated document size; zero means
	// unlimited.
	MaxDecompressedBytes int64

	// MaxTreeDepth bounds XML nesting; zero means unlimited.
	MaxTreeDepth int

	// Logger receives debug traces (positional match fallbacks and the
	// like). Nil means silent.
	Logger *slog.Logger
}

// ChangeSide is one side's instrument evidence within a TrackChange.
type ChangeSide struct {
	// Name is the resolved instrument name, when one exists on this side.
	Name string `json:"name,omitempty"`
	// TrackNameHint carries the track display name when no instrument name
	// was resolvable on this side.
	TrackNameHint string `json:"track_name_hint,omitempty"`
}

// TrackChange is one detected per-track instrument difference.
type TrackChange struct {
	// TrackID is the format-defined identifier, when present.
	TrackID string `json:"track_id,omitempty"`
	// TrackName is the local revision's resolved display name.
	TrackName string `json:"track_name"`
	// BeforeTrackName and AfterTrackName are the two sides' display names.
	BeforeTrackName string `json:"before_track_name"`
	AfterTrackName  string `json:"after_track_name"`
	// Before and After carry the instrument evidence for each side.
	Before ChangeSide `json:"before"`
	After  ChangeSide `json:"after"`
}

// Result is the comparison output contract. Reason is diagnostic text only;
// callers must not parse it.
type Result struct {
	OK      bool          `json:"ok"`
	Reason  string        `json:"reason,omitempty"`
	Changes []TrackChange `json:"changes"`
}

// TrackSummary is one track's row in the content summary.
type TrackSummary struct {
	Kind       liveset.TrackKind `json:"kind"`
	Name       string            `json:"name"`
	Instrument string            `json:"instrument,omitempty"`
}

// Summary describes a single document revision.
type Summary struct {
	ContentHash   string             `json:"content_hash"`
	FormatVersion string             `json:"format_version"`
	Creator       string             `json:"creator"`
	AudioTracks   int                `json:"audio_tracks"`
	MidiTracks    int                `json:"midi_tracks"`
	ReturnTracks  int                `json:"return_tracks"`
	Tracks        []TrackSummary     `json:"tracks"`
	Samples       sampleusage.Usage  `json:"samples"`
}
