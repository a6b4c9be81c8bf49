// Package report renders extracted document data as human-readable text for
// the content summary mode. It owns no extraction logic; it formats what the
// engine already resolved.
package report
