package main

import (
	"context"
	"testing"

	tfprovider "github.com/hashicorp/terraform-plugin-framework/provider"

	"github.com/regen28/terraform-provider-regen28/internal/provider"
)

func TestVersion(t *testing.T) {
	if version == "" {
		t.Error("version should not be empty")
	}

	// Default version should be "dev"
	if version != "dev" {
		t.Logf("version = %s (expected 'dev' but may be set by build)", version)
	}
}

func TestProviderReportsVersion(t *testing.T) {
	var resp tfprovider.MetadataResponse
	provider.New(version)().Metadata(context.Background(), tfprovider.MetadataRequest{}, &resp)

	if resp.Version != version {
		t.Errorf("provider version = %q, want %q", resp.Version, version)
	}
	if resp.TypeName != "regen28" {
		t.Errorf("provider type name = %q, want regen28", resp.TypeName)
	}
}
