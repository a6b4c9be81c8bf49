// Package projdoc decodes raw project document buffers into UTF-8 XML text.
//
// Ableton Live project documents (.als) are gzip-compressed XML, but copies
// that passed through other tooling may arrive already inflated, so Decode
// sniffs the gzip magic bytes and passes non-gzip buffers through untouched.
// Every decoded document carries a sha256 content hash so callers can use it
// as a cache key or identity.
package projdoc
