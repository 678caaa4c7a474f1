// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"

	"github.com/regen28/terraform-provider-regen28/internal/renderer"
	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// SceneLoader defines the interface for obtaining the scene to draw
type SceneLoader interface {
	// LoadScene returns the scene described by the document at path, or the
	// built-in ReGen28 scene when path is empty
	LoadScene(ctx context.Context, path string) (*scene.Scene, error)
}

// DiagramRenderer defines the interface for rendering diagrams
type DiagramRenderer interface {
	// RenderDiagram draws a scene and saves it to the output path
	RenderDiagram(ctx context.Context, s *scene.Scene, outputPath string, opts renderer.RenderOptions) error
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// ValidateOutputPath validates an output path for safety and writability
	ValidateOutputPath(path string) error

	// ValidateScenePath validates a scene document path
	ValidateScenePath(path string) error
}

// DiagramGenerator defines the interface for generating diagrams
type DiagramGenerator interface {
	// Generate draws the configured scene to the configured output
	Generate(ctx context.Context, cfg DiagramConfig) (*GenerateResult, error)
}

// DiagramConfig contains all configuration needed to generate a diagram
type DiagramConfig struct {
	ScenePath  string
	OutputPath string
	Format     string
	DPI        int
	PadInches  float64
	Trim       bool
}

// GenerateResult contains the results of diagram generation
type GenerateResult struct {
	SceneName    string
	ElementCount int64
	OutOfBounds  []string
	OutputPath   string
}
