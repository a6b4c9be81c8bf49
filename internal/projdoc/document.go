package projdoc

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrCorruptArchive marks buffers that announce gzip compression but do
	// not decompress. Surfaced verbatim; a corrupt file must never read as
	// "no changes".
	ErrCorruptArchive = errors.New("corrupt project archive")

	// ErrSizeLimit marks documents whose decompressed form exceeds the
	// configured bound.
	ErrSizeLimit = errors.New("decompressed size limit exceeded")
)

const gzipMagic = "\x1f\x8b"

// Limits bounds resource use during decoding.
type Limits struct {
	// MaxDecompressedBytes caps the inflated document size. Zero or negative
	// means unlimited.
	MaxDecompressedBytes int64
}

// Document is one decoded project document revision.
type Document struct {
	// XML is the decompressed UTF-8 document text.
	XML []byte
	// Hash is the hex sha256 of XML, usable as a cache key.
	Hash string
	// Compressed records whether the source buffer carried a gzip envelope.
	Compressed bool
}

// Decode inspects data for a gzip envelope, inflates it when present, and
// returns the document text with its content hash. Buffers without the gzip
// magic sequence are assumed to already be XML text.
func Decode(data []byte, limits Limits) (*Document, error) {
	if !hasGzipMagic(data) {
		if limits.MaxDecompressedBytes > 0 && int64(len(data)) > limits.MaxDecompressedBytes {
			return nil, fmt.Errorf("%w: document is %d bytes, limit %d", ErrSizeLimit, len(data), limits.MaxDecompressedBytes)
		}
		return newDocument(data, false), nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	defer reader.Close()

	var limited io.Reader = reader
	if limits.MaxDecompressedBytes > 0 {
		limited = io.LimitReader(reader, limits.MaxDecompressedBytes+1)
	}

	inflated, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	if limits.MaxDecompressedBytes > 0 && int64(len(inflated)) > limits.MaxDecompressedBytes {
		return nil, fmt.Errorf("%w: document inflates past %d bytes", ErrSizeLimit, limits.MaxDecompressedBytes)
	}

	return newDocument(inflated, true), nil
}

func hasGzipMagic(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic[0] && data[1] == gzipMagic[1]
}

func newDocument(xmlText []byte, compressed bool) *Document {
	sum := sha256.Sum256(xmlText)
	return &Document{
		XML:        xmlText,
		Hash:       hex.EncodeToString(sum[:]),
		Compressed: compressed,
	}
}
