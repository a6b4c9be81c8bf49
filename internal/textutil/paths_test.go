package textutil

import "testing"

func TestPathBase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Samples/Kick.wav", "Kick.wav"},
		{"Samples/Imported/Kick.wav", "Kick.wav"},
		{`Presets\Bass.adv`, "Bass.adv"},
		{"Kick.wav", "Kick.wav"},
		{"", ""},
		{"  Samples/Snare.wav  ", "Snare.wav"},
		{"trailing/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := PathBase(tt.input); got != tt.expected {
				t.Errorf("PathBase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripExtensions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Bass.adv", "Bass"},
		{"Drums.ADG", "Drums"},
		{"Lead.wav", "Lead.wav"},
		{"NoExtension", "NoExtension"},
	}
	for _, tt := range tests {
		if got := StripExtensions(tt.input, ".adv", ".adg", ".alp"); got != tt.expected {
			t.Errorf("StripExtensions(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
		{"zero", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}
