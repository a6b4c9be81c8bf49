package testsupport

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"strings"
	"testing"
)

// TrackSpec describes one track in a fixture document.
type TrackSpec struct {
	// Kind is "audio", "midi", or "return".
	Kind          string
	ID            string
	EffectiveName string
	UserName      string
	// DeviceType names the instrument element; defaults to "Operator" when
	// any other device field is set.
	DeviceType string
	// PresetPath becomes the device's FileRef relative path.
	PresetPath string
	// PresetName becomes the device's explicit PresetName value.
	PresetName string
	// ClipPaths places one audio clip per path under the track's events.
	ClipPaths []string
	// ClipNames places name-only clips (no sample reference).
	ClipNames []string
}

// SampleSpec describes one top-level sample definition entry.
type SampleSpec struct {
	ID   string
	Name string
	Path string
}

// DocSpec describes a whole fixture document.
type DocSpec struct {
	Major   string
	Minor   string
	Creator string
	Tracks  []TrackSpec
	Samples []SampleSpec
}

// BuildDocument renders the spec as raw XML text.
func BuildDocument(t testing.TB, spec DocSpec) []byte {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<Ableton MajorVersion=%q MinorVersion=%q Creator=%q>`,
		defaultString(spec.Major, "5"),
		defaultString(spec.Minor, "10.0_377"),
		defaultString(spec.Creator, "Ableton Live 10.1.7"))
	b.WriteString("<LiveSet>")

	if len(spec.Samples) > 0 {
		b.WriteString("<Samples>")
		for _, sample := range spec.Samples {
			fmt.Fprintf(&b, `<Sample Id=%q>`, sample.ID)
			if sample.Name != "" {
				fmt.Fprintf(&b, `<Name Value=%q/>`, sample.Name)
			}
			if sample.Path != "" {
				fmt.Fprintf(&b, `<FileRef><RelativePath Value=%q/></FileRef>`, sample.Path)
			}
			b.WriteString("</Sample>")
		}
		b.WriteString("</Samples>")
	}

	b.WriteString("<Tracks>")
	for _, track := range spec.Tracks {
		writeTrack(&b, track)
	}
	b.WriteString("</Tracks></LiveSet></Ableton>")

	return []byte(b.String())
}

// BuildCompressed renders the spec and wraps it in the gzip envelope.
func BuildCompressed(t testing.TB, spec DocSpec) []byte {
	t.Helper()
	return GzipBytes(t, BuildDocument(t, spec))
}

// GzipBytes compresses data the way saved project documents are stored.
func GzipBytes(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func writeTrack(b *strings.Builder, track TrackSpec) {
	tag := map[string]string{
		"audio":  "AudioTrack",
		"midi":   "MidiTrack",
		"return": "ReturnTrack",
	}[track.Kind]
	if tag == "" {
		tag = "AudioTrack"
	}

	b.WriteString("<" + tag)
	if track.ID != "" {
		fmt.Fprintf(b, ` Id=%q`, track.ID)
	}
	b.WriteString(">")

	if track.EffectiveName != "" || track.UserName != "" {
		b.WriteString("<Name>")
		fmt.Fprintf(b, `<EffectiveName Value=%q/>`, track.EffectiveName)
		fmt.Fprintf(b, `<UserName Value=%q/>`, track.UserName)
		b.WriteString("</Name>")
	}

	deviceType := track.DeviceType
	if deviceType == "" && (track.PresetPath != "" || track.PresetName != "") {
		deviceType = "Operator"
	}
	if deviceType != "" {
		b.WriteString("<DeviceChain><Devices>")
		b.WriteString("<" + xmlEscape(deviceType) + ">")
		if track.PresetName != "" {
			fmt.Fprintf(b, `<PresetName Value=%q/>`, track.PresetName)
		}
		if track.PresetPath != "" {
			fmt.Fprintf(b, `<FileRef><RelativePath Value=%q/></FileRef>`, track.PresetPath)
		}
		b.WriteString("</" + xmlEscape(deviceType) + ">")
		b.WriteString("</Devices></DeviceChain>")
	}

	if len(track.ClipPaths) > 0 || len(track.ClipNames) > 0 {
		b.WriteString("<Events>")
		for _, path := range track.ClipPaths {
			fmt.Fprintf(b, `<AudioClip><SampleRef><FileRef><RelativePath Value=%q/></FileRef></SampleRef></AudioClip>`, path)
		}
		for _, name := range track.ClipNames {
			fmt.Fprintf(b, `<AudioClip><Name Value=%q/></AudioClip>`, name)
		}
		b.WriteString("</Events>")
	}

	b.WriteString("</" + tag + ">")
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func xmlEscape(value string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(value)); err != nil {
		return value
	}
	return buf.String()
}
