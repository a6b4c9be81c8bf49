package diffengine

import (
	"log/slog"

	"github.com/google/uuid"

	"soundhaus/internal/liveset"
	"soundhaus/internal/logging"
	"soundhaus/internal/projdoc"
	"soundhaus/internal/sampleusage"
	"soundhaus/internal/xmltree"
)

// Compare matches tracks between the local and reference revisions and
// reports per-track instrument changes. It never returns an error: every
// structural failure maps to a not-ok Result with a diagnostic reason.
func Compare(local, reference []byte, opts Options) Result {
	logger := runLogger(opts)

	localModel, err := buildModel(local, opts)
	if err != nil {
		logger.Debug("local revision rejected", logging.Error(err))
		return failure(err)
	}
	referenceModel, err := buildModel(reference, opts)
	if err != nil {
		logger.Debug("reference revision rejected", logging.Error(err))
		return failure(err)
	}

	changes := diffTracks(localModel.set, referenceModel.set, opts, logger)
	logger.Debug("comparison complete",
		logging.Int("local_tracks", len(localModel.set.Tracks)),
		logging.Int("reference_tracks", len(referenceModel.set.Tracks)),
		logging.Int("changes", len(changes)))

	return Result{OK: true, Changes: changes}
}

// Summarize builds the single-document content summary, sharing the
// decode/normalize/extract stages with Compare.
func Summarize(data []byte, opts Options) (*Summary, error) {
	model, err := buildModel(data, opts)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ContentHash:   model.doc.Hash,
		FormatVersion: model.set.Info.FormatVersion(),
		Creator:       model.set.Info.Creator,
		AudioTracks:   model.set.AudioTrackCount(),
		MidiTracks:    model.set.MidiTrackCount(),
		ReturnTracks:  model.set.ReturnTrackCount,
		Tracks:        make([]TrackSummary, 0, len(model.set.Tracks)),
		Samples:       sampleusage.Aggregate(model.root),
	}
	for _, track := range model.set.Tracks {
		row := TrackSummary{Kind: track.Kind, Name: track.Name}
		if instrument := liveset.MainInstrument(track); instrument != nil {
			row.Instrument = instrument.Name
		}
		summary.Tracks = append(summary.Tracks, row)
	}
	return summary, nil
}

// model bundles the per-revision artifacts; the set's track nodes point into
// root, so the two live and die together.
type model struct {
	doc  *projdoc.Document
	root *xmltree.Node
	set  *liveset.Set
}

func buildModel(data []byte, opts Options) (*model, error) {
	doc, err := projdoc.Decode(data, projdoc.Limits{MaxDecompressedBytes: opts.MaxDecompressedBytes})
	if err != nil {
		return nil, err
	}
	root, err := xmltree.Parse(doc.XML, opts.MaxTreeDepth)
	if err != nil {
		return nil, err
	}
	set, err := liveset.Extract(root)
	if err != nil {
		return nil, err
	}
	return &model{doc: doc, root: root, set: set}, nil
}

func failure(err error) Result {
	return Result{OK: false, Reason: err.Error(), Changes: []TrackChange{}}
}

func runLogger(opts Options) *slog.Logger {
	logger := logging.NewComponentLogger(opts.Logger, "diffengine")
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
}
