// Package provider implements the Terraform provider that renders the ReGen28
// architecture diagram. The resource and data source share one generator so
// both draw identical output for identical configuration.
package provider

import (
	"context"
	"fmt"

	"github.com/regen28/terraform-provider-regen28/internal/interfaces"
	"github.com/regen28/terraform-provider-regen28/internal/renderer"
	"github.com/regen28/terraform-provider-regen28/internal/scene"
	"github.com/regen28/terraform-provider-regen28/internal/validation"
)

// DiagramConfig contains all configuration needed to generate a diagram
type DiagramConfig = interfaces.DiagramConfig

// GenerateResult contains the results of diagram generation
type GenerateResult = interfaces.GenerateResult

var _ interfaces.DiagramGenerator = &DiagramGenerator{}

// DiagramGenerator handles the core logic of generating diagrams.
// Zero values of its collaborators fall back to the real implementations.
type DiagramGenerator struct {
	Loader    interfaces.SceneLoader
	Renderer  interfaces.DiagramRenderer
	Validator interfaces.PathValidator
}

// NewDiagramGenerator returns a generator wired to the real scene loader,
// renderer and path validation.
func NewDiagramGenerator() *DiagramGenerator {
	return &DiagramGenerator{
		Loader:    SceneLoader{},
		Renderer:  fileRenderer{},
		Validator: pathValidator{},
	}
}

// Generate draws the configured scene and writes it to the output path.
//
// It performs the following steps:
//  1. Validates output and scene paths
//  2. Normalizes the output format
//  3. Loads the built-in scene or the scene document
//  4. Renders the diagram to the output path
//
// Elements lying outside the canvas do not fail generation; they are
// reported in the result.
func (g *DiagramGenerator) Generate(ctx context.Context, cfg DiagramConfig) (*GenerateResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	loader, rend, validator := g.collaborators()

	if err := validator.ValidateOutputPath(cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("invalid output path: %w", err)
	}
	if cfg.ScenePath != "" {
		if err := validator.ValidateScenePath(cfg.ScenePath); err != nil {
			return nil, fmt.Errorf("invalid scene path: %w", err)
		}
	}

	format, err := renderer.NormalizeFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	s, err := loader.LoadScene(ctx, cfg.ScenePath)
	if err != nil {
		return nil, err
	}

	opts := renderer.DefaultRenderOptions()
	opts.Format = format
	if cfg.DPI > 0 {
		opts.DPI = float64(cfg.DPI)
	}
	if cfg.PadInches > 0 {
		opts.PadInches = cfg.PadInches
	}
	opts.Trim = cfg.Trim

	if err := rend.RenderDiagram(ctx, s, cfg.OutputPath, opts); err != nil {
		return nil, fmt.Errorf("failed to render diagram: %w", err)
	}

	return &GenerateResult{
		SceneName:    s.Name,
		ElementCount: int64(len(s.Elements)),
		OutOfBounds:  describeOutOfBounds(s),
		OutputPath:   cfg.OutputPath,
	}, nil
}

func (g *DiagramGenerator) collaborators() (interfaces.SceneLoader, interfaces.DiagramRenderer, interfaces.PathValidator) {
	var (
		loader    interfaces.SceneLoader    = SceneLoader{}
		rend      interfaces.DiagramRenderer = fileRenderer{}
		validator interfaces.PathValidator  = pathValidator{}
	)
	if g.Loader != nil {
		loader = g.Loader
	}
	if g.Renderer != nil {
		rend = g.Renderer
	}
	if g.Validator != nil {
		validator = g.Validator
	}
	return loader, rend, validator
}

func describeOutOfBounds(s *scene.Scene) []string {
	oob := s.OutOfBounds()
	if len(oob) == 0 {
		return nil
	}
	out := make([]string, len(oob))
	for i, o := range oob {
		out[i] = o.String()
	}
	return out
}

// fileRenderer adapts the renderer package to interfaces.DiagramRenderer
type fileRenderer struct{}

func (fileRenderer) RenderDiagram(ctx context.Context, s *scene.Scene, outputPath string, opts renderer.RenderOptions) error {
	return renderer.RenderDiagram(ctx, s, outputPath, opts)
}

// pathValidator adapts the validation package to interfaces.PathValidator
type pathValidator struct{}

func (pathValidator) ValidateOutputPath(path string) error {
	return validation.ValidateOutputPath(path)
}

func (pathValidator) ValidateScenePath(path string) error {
	return validation.ValidateScenePath(path)
}
