// Command architecture_diagram renders the ReGen28 wellness platform
// architecture diagram to regen28_architecture.png in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/regen28/terraform-provider-regen28/internal/renderer"
	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

const outputFile = "regen28_architecture.png"

var improvements = []string{
	"Dashboard positioned as central root hub at bottom",
	"All components feed data into the dashboard",
	"Journal system now includes mood tracking capability",
	"Clear data flow arrows pointing to dashboard",
	"Professional layout with proper spacing",
	"Mood correlations shown across all components",
}

func main() {
	if err := run(context.Background(), os.Stdout, outputFile, renderer.DefaultRenderOptions()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run draws the built-in scene to outputPath and reports on w once the file
// is saved. Nothing is printed when rendering fails.
func run(ctx context.Context, w io.Writer, outputPath string, opts renderer.RenderOptions) error {
	if err := renderer.RenderDiagram(ctx, scene.Regen28(), outputPath, opts); err != nil {
		return err
	}

	printSummary(w, filepath.Base(outputPath))
	return nil
}

func printSummary(w io.Writer, name string) {
	success := color.New(color.FgGreen, color.Bold)
	header := color.New(color.FgCyan)
	check := color.New(color.FgGreen)

	success.Fprintf(w, "✅ Clean architecture diagram saved as '%s'\n", name)
	header.Fprintln(w, "🎨 Design improvements:")
	for _, line := range improvements {
		check.Fprint(w, "   ✓ ")
		fmt.Fprintln(w, line)
	}
}
