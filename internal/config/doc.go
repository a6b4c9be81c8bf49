// Package config loads, normalizes, and validates SoundHaus configuration.
//
// Configuration lives in a TOML file (default ~/.config/soundhaus/config.toml,
// with a project-local soundhaus.toml fallback). Every field has a working
// default so the CLI runs without any file present.
package config
