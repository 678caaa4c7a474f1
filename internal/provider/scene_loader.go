package provider

import (
	"context"
	"fmt"

	"github.com/regen28/terraform-provider-regen28/internal/interfaces"
	"github.com/regen28/terraform-provider-regen28/internal/parser"
	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

var _ interfaces.SceneLoader = SceneLoader{}

// SceneLoader resolves the scene a diagram draws. An empty path selects the
// built-in ReGen28 architecture scene; anything else is parsed as an HCL
// scene document.
type SceneLoader struct{}

// LoadScene implements interfaces.SceneLoader
func (SceneLoader) LoadScene(ctx context.Context, path string) (*scene.Scene, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if path == "" {
		return scene.Regen28(), nil
	}

	s, err := parser.ParseSceneFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return s, nil
}
