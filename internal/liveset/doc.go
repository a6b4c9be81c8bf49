// Package liveset extracts typed entities from a normalized project tree:
// tracks, each track's main instrument, and document-level format info.
//
// The underlying format has no single authoritative field for most of what
// this package resolves, so every lookup is a layered fallback chain:
// try the best source, trim, fall through on absence. Missing data is never
// an error here; extraction only fails when the tree itself lacks the
// expected root or track container.
package liveset
