package diffengine

import (
	"log/slog"

	"soundhaus/internal/liveset"
	"soundhaus/internal/logging"
)

// unknownLabel is the sentinel for a side with no instrument evidence. Two
// unknown sides compare equal, so a track with nothing resolvable on either
// side never produces a change record.
const unknownLabel = "unknown"

// diffTracks matches every local track to a reference counterpart and emits
// a change when the two sides' effective instrument labels differ. Unmatched
// local tracks are skipped: this engine reports changes, not additions or
// removals.
func diffTracks(local, reference *liveset.Set, opts Options, logger *slog.Logger) []TrackChange {
	byID := make(map[string]*liveset.Track)
	byName := make(map[string]*liveset.Track)
	for i := range reference.Tracks {
		track := &reference.Tracks[i]
		if track.ID != "" {
			if _, taken := byID[track.ID]; !taken {
				byID[track.ID] = track
			}
		}
		if _, taken := byName[track.Name]; !taken {
			byName[track.Name] = track
		}
	}

	changes := make([]TrackChange, 0)
	for i := range local.Tracks {
		localTrack := &local.Tracks[i]
		counterpart := matchCounterpart(localTrack, i, reference.Tracks, byID, byName, logger)
		if counterpart == nil {
			continue
		}

		afterSide, afterLabel := sideFor(localTrack, opts.AllowTrackNameFallback)
		beforeSide, beforeLabel := sideFor(counterpart, opts.AllowTrackNameFallback)
		if afterLabel == beforeLabel {
			continue
		}

		changes = append(changes, TrackChange{
			TrackID:         localTrack.ID,
			TrackName:       localTrack.Name,
			BeforeTrackName: counterpart.Name,
			AfterTrackName:  localTrack.Name,
			Before:          beforeSide,
			After:           afterSide,
		})
	}
	return changes
}

// matchCounterpart applies the three-tier matching policy: exact identifier,
// exact resolved name, then position. Positional matching silently pairs
// wrong tracks when ordering changed between revisions, so it is traced.
func matchCounterpart(local *liveset.Track, index int, reference []liveset.Track, byID, byName map[string]*liveset.Track, logger *slog.Logger) *liveset.Track {
	if local.ID != "" {
		if track, ok := byID[local.ID]; ok {
			return track
		}
	}
	if track, ok := byName[local.Name]; ok {
		return track
	}
	if index < len(reference) {
		logger.Debug("positional track match",
			logging.String(logging.FieldEventType, "positional_match"),
			logging.String("track", local.Name),
			logging.Int("index", index))
		return &reference[index]
	}
	return nil
}

// sideFor resolves one side's instrument evidence and its effective label.
func sideFor(track *liveset.Track, allowNameFallback bool) (ChangeSide, string) {
	instrument := liveset.MainInstrument(*track)
	label := effectiveLabel(track, instrument, allowNameFallback)

	side := ChangeSide{}
	if instrument != nil && instrument.Name != "" {
		side.Name = instrument.Name
	} else {
		side.TrackNameHint = track.Name
	}
	return side, label
}

// effectiveLabel computes the string whose inequality across revisions means
// "the instrument changed": the resolved preset or device type, then a
// track-wide preset-name pass, then a file-path pass, then (only when the
// caller opted in) the bare track name, then the unknown sentinel.
func effectiveLabel(track *liveset.Track, instrument *liveset.Instrument, allowNameFallback bool) string {
	if instrument != nil {
		if instrument.Preset != "" {
			return instrument.Preset
		}
		if instrument.DeviceType != "" {
			return instrument.DeviceType
		}
	}
	if preset := liveset.TrackPresetName(track.Node); preset != "" {
		return preset
	}
	if path := liveset.TrackSourcePath(track.Node); path != "" {
		return path
	}
	if allowNameFallback && track.Name != "" {
		return track.Name
	}
	return unknownLabel
}
