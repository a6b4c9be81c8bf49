// Package testsupport builds project document fixtures for tests: track and
// clip layouts are described declaratively and rendered to the XML (or
// gzip-compressed) form the engine consumes.
package testsupport
