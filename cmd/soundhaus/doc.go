// Command soundhaus compares and summarizes Ableton Live project documents.
//
// The diff subcommand reports per-track instrument changes between a local
// file and a reference revision; summary and samples describe a single
// document. Both consume .als files directly (gzip-compressed or raw XML).
package main
