// Package sampleusage tallies how often each sample is referenced by clips
// in a project document.
//
// Clips carry several competing identity schemes (relative path, internal
// reference id, a sample-ref attribute, or just a clip name), so occurrences
// are keyed by the best available scheme per clip, and the sample definition
// lookup is indexed under every scheme at once so counts and friendly names
// line up regardless of which scheme a clip happened to use.
package sampleusage
