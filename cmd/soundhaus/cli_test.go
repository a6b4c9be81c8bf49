package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soundhaus/internal/diffengine"
	"soundhaus/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeTestConfig points the cache at a temp directory so tests never touch
// the user's real cache.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("[logging]\nlevel = %q\n\n[cache]\nenabled = true\npath = %q\n",
		"error", filepath.Join(dir, "summaries.db"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeFixture(t *testing.T, name string, spec testsupport.DocSpec) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, testsupport.BuildCompressed(t, spec), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestDiffCommandReportsChange(t *testing.T) {
	cfg := writeTestConfig(t)
	local := writeFixture(t, "local.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "7", EffectiveName: "Synth", PresetPath: "Presets/Lead.adv"},
	}})
	reference := writeFixture(t, "reference.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "7", EffectiveName: "Synth", PresetPath: "Presets/Bass.adv"},
	}})

	out, err := runCLI(t, "--config", cfg, "diff", local, reference)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(out, "1 track(s) changed") {
		t.Errorf("output missing change count:\n%s", out)
	}
	if !strings.Contains(out, "Bass") || !strings.Contains(out, "Lead") {
		t.Errorf("output missing instrument names:\n%s", out)
	}
}

func TestDiffCommandNoChanges(t *testing.T) {
	cfg := writeTestConfig(t)
	spec := testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "audio", ID: "1", EffectiveName: "Drums", PresetPath: "Kits/808.adg"},
	}}
	local := writeFixture(t, "local.als", spec)
	reference := writeFixture(t, "reference.als", spec)

	out, err := runCLI(t, "--config", cfg, "diff", local, reference)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(out, "No instrument changes detected.") {
		t.Errorf("output = %q", out)
	}
}

func TestDiffCommandJSON(t *testing.T) {
	cfg := writeTestConfig(t)
	local := writeFixture(t, "local.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "2", EffectiveName: "Keys", PresetPath: "Presets/Piano.adv"},
	}})
	reference := writeFixture(t, "reference.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "2", EffectiveName: "Keys", PresetPath: "Presets/Organ.adv"},
	}})

	out, err := runCLI(t, "--config", cfg, "diff", "--json", local, reference)
	if err != nil {
		t.Fatalf("diff --json: %v", err)
	}

	var result diffengine.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if !result.OK {
		t.Fatalf("result not ok: %s", result.Reason)
	}
	if len(result.Changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(result.Changes))
	}
	if result.Changes[0].Before.Name != "Organ" || result.Changes[0].After.Name != "Piano" {
		t.Errorf("change = %+v", result.Changes[0])
	}
}

func TestDiffCommandCorruptReference(t *testing.T) {
	cfg := writeTestConfig(t)
	local := writeFixture(t, "local.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "audio", ID: "1", EffectiveName: "A"},
	}})
	reference := filepath.Join(t.TempDir(), "reference.als")
	if err := os.WriteFile(reference, []byte{0x1F, 0x8B, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := runCLI(t, "--config", cfg, "diff", local, reference); err == nil {
		t.Fatal("expected error for corrupt reference")
	}
}

func TestSummaryCommand(t *testing.T) {
	cfg := writeTestConfig(t)
	file := writeFixture(t, "project.als", testsupport.DocSpec{
		Minor:   "11.0_433",
		Creator: "Ableton Live 11.2",
		Tracks: []testsupport.TrackSpec{
			{Kind: "midi", ID: "1", EffectiveName: "Lead", PresetPath: "Presets/Saw.adv"},
			{Kind: "audio", ID: "2", EffectiveName: "Vox", ClipPaths: []string{"Samples/Take1.wav"}},
		},
	})

	out, err := runCLI(t, "--config", cfg, "summary", "--no-cache", file)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"5.11.0_433", "Ableton Live 11.2", "Lead", "Saw", "Take1.wav"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryCommandUsesCache(t *testing.T) {
	cfg := writeTestConfig(t)
	file := writeFixture(t, "project.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "1", EffectiveName: "Pad", PresetPath: "Presets/Warm.adv"},
	}})

	first, err := runCLI(t, "--config", cfg, "summary", "--json", file)
	if err != nil {
		t.Fatalf("first summary: %v", err)
	}
	second, err := runCLI(t, "--config", cfg, "summary", "--json", file)
	if err != nil {
		t.Fatalf("second summary: %v", err)
	}

	var a, b diffengine.Summary
	if err := json.Unmarshal([]byte(first), &a); err != nil {
		t.Fatalf("unmarshal first: %v", err)
	}
	if err := json.Unmarshal([]byte(second), &b); err != nil {
		t.Fatalf("unmarshal second: %v", err)
	}
	if a.ContentHash == "" || a.ContentHash != b.ContentHash {
		t.Errorf("hashes differ: %q vs %q", a.ContentHash, b.ContentHash)
	}

	out, err := runCLI(t, "--config", cfg, "cache", "status")
	if err != nil {
		t.Fatalf("cache status: %v", err)
	}
	if !strings.Contains(out, "Entries: 1") {
		t.Errorf("status = %q", out)
	}
}

func TestSamplesCommandJSON(t *testing.T) {
	cfg := writeTestConfig(t)
	file := writeFixture(t, "project.als", testsupport.DocSpec{
		Samples: []testsupport.SampleSpec{{ID: "s1", Name: "Kick Punchy", Path: "Samples/Kick.wav"}},
		Tracks: []testsupport.TrackSpec{
			{Kind: "audio", ID: "1", EffectiveName: "Drums",
				ClipPaths: []string{"Samples/Kick.wav", "Samples/Kick.wav", "Samples/Snare.wav"}},
		},
	})

	out, err := runCLI(t, "--config", cfg, "samples", "--json", file)
	if err != nil {
		t.Fatalf("samples: %v", err)
	}

	var usage struct {
		Total   int `json:"total"`
		Records []struct {
			Identity string `json:"identity"`
			Name     string `json:"name"`
			Count    int    `json:"count"`
		} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &usage); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if usage.Total != 3 {
		t.Errorf("Total = %d, want 3", usage.Total)
	}
	if len(usage.Records) == 0 || usage.Records[0].Identity != "Kick.wav" || usage.Records[0].Count != 2 {
		t.Errorf("records = %+v", usage.Records)
	}
}

func TestCacheClear(t *testing.T) {
	cfg := writeTestConfig(t)
	file := writeFixture(t, "project.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "audio", ID: "1", EffectiveName: "A"},
	}})
	if _, err := runCLI(t, "--config", cfg, "summary", "--json", file); err != nil {
		t.Fatalf("summary: %v", err)
	}

	if _, err := runCLI(t, "--config", cfg, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	out, err := runCLI(t, "--config", cfg, "cache", "status")
	if err != nil {
		t.Fatalf("cache status: %v", err)
	}
	if !strings.Contains(out, "Entries: 0") {
		t.Errorf("status = %q", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "--config", target, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Errorf("init output = %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCLI(t, "--config", target, "config", "init"); err == nil {
		t.Fatal("expected error when config already exists")
	}

	show, err := runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(show, "[limits]") {
		t.Errorf("show output = %q", show)
	}
}

func TestDiffCommandNameFallbackFlag(t *testing.T) {
	cfg := writeTestConfig(t)
	local := writeFixture(t, "local.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "3", EffectiveName: "New Name"},
	}})
	reference := writeFixture(t, "reference.als", testsupport.DocSpec{Tracks: []testsupport.TrackSpec{
		{Kind: "midi", ID: "3", EffectiveName: "Old Name"},
	}})

	out, err := runCLI(t, "--config", cfg, "diff", local, reference)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(out, "No instrument changes detected.") {
		t.Errorf("rename reported without opt-in:\n%s", out)
	}

	out, err = runCLI(t, "--config", cfg, "diff", "--allow-name-fallback", local, reference)
	if err != nil {
		t.Fatalf("diff with fallback: %v", err)
	}
	if !strings.Contains(out, "Old Name") || !strings.Contains(out, "New Name") {
		t.Errorf("fallback change missing:\n%s", out)
	}
}
