// Package diffengine is the public surface of the structural diff engine.
//
// It is a pure function layer over the decode/normalize/extract pipeline:
// two byte buffers in, a change report out, or one buffer in, a content
// summary out. Nothing here holds state between calls, so any number of
// comparisons may run concurrently. Structural failures (corrupt archive,
// unparseable XML, exceeded limits) surface as a not-ok result with a
// diagnostic reason; missing data inside a healthy document never fails,
// it degrades through the extraction fallback chains.
package diffengine
