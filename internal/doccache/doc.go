// Package doccache persists content summaries keyed by document content
// hash, so repeated summary calls on unchanged files skip the decode and
// extraction work. The cache is purely an optimization; the engine never
// depends on it and stale entries are impossible because the key is the
// sha256 of the decompressed document itself.
package doccache
