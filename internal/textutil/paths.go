package textutil

import "strings"

// PathBase returns the final element of a path that may use forward or
// backward slashes. Project documents written on Windows carry backslash
// paths; the same document reopened on macOS carries forward slashes.
func PathBase(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		path = path[idx+1:]
	}
	return path
}

// StripExtensions removes the first matching suffix from name, comparing
// case-insensitively. Extensions must include the leading dot.
func StripExtensions(name string, extensions ...string) string {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// Truncate caps s at max runes, appending an ellipsis marker when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Ternary is a generic conditional helper that returns a if cond is true, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
