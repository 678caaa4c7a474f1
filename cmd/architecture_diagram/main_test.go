package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/regen28/terraform-provider-regen28/internal/renderer"
)

func testOptions() renderer.RenderOptions {
	opts := renderer.DefaultRenderOptions()
	opts.DPI = 72
	return opts
}

func TestRun(t *testing.T) {
	color.NoColor = true

	outputPath := filepath.Join(t.TempDir(), outputFile)
	var out bytes.Buffer

	if err := run(context.Background(), &out, outputPath, testOptions()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := []string{
		"✅ Clean architecture diagram saved as 'regen28_architecture.png'",
		"🎨 Design improvements:",
		"   ✓ Dashboard positioned as central root hub at bottom",
		"   ✓ All components feed data into the dashboard",
		"   ✓ Journal system now includes mood tracking capability",
		"   ✓ Clear data flow arrows pointing to dashboard",
		"   ✓ Professional layout with proper spacing",
		"   ✓ Mood correlations shown across all components",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("printed %d lines, want %d:\n%s", len(got), len(want), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	f, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open output file: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestRunOverwrites(t *testing.T) {
	color.NoColor = true

	outputPath := filepath.Join(t.TempDir(), outputFile)
	for i := 0; i < 2; i++ {
		if err := run(context.Background(), &bytes.Buffer{}, outputPath, testOptions()); err != nil {
			t.Fatalf("run() #%d error = %v", i+1, err)
		}
	}
}

func TestRunFailurePrintsNothing(t *testing.T) {
	var out bytes.Buffer
	outputPath := filepath.Join(t.TempDir(), "missing", outputFile)

	if err := run(context.Background(), &out, outputPath, testOptions()); err == nil {
		t.Fatal("run() should fail when the output directory does not exist")
	}
	if out.Len() != 0 {
		t.Errorf("run() printed %q on failure", out.String())
	}
}
