package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/regen28/terraform-provider-regen28/internal/renderer"
)

// DPI bounds accepted anywhere a resolution can be configured
const (
	MinDPI = 72
	MaxDPI = 600
)

// Ensure Regen28Provider satisfies various provider interfaces.
var _ provider.Provider = &Regen28Provider{}

// Regen28Provider defines the provider implementation.
type Regen28Provider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// Regen28ProviderModel describes the provider data model.
type Regen28ProviderModel struct {
	DefaultDPI types.Int64 `tfsdk:"default_dpi"`
}

// providerData is handed to resources and data sources on Configure
type providerData struct {
	DefaultDPI int
}

func (p *Regen28Provider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "regen28"
	resp.Version = p.version
}

func (p *Regen28Provider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "The ReGen28 provider renders the ReGen28 wellness platform architecture diagram, or any scene document, to an image file.",
		Attributes: map[string]schema.Attribute{
			"default_dpi": schema.Int64Attribute{
				Description: "Resolution used by diagrams that do not set dpi. Defaults to 300.",
				Optional:    true,
				Validators: []validator.Int64{
					int64validator.Between(MinDPI, MaxDPI),
				},
			},
		},
	}
}

func (p *Regen28Provider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data Regen28ProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	pd := &providerData{DefaultDPI: renderer.DefaultDPI}
	if !data.DefaultDPI.IsNull() && !data.DefaultDPI.IsUnknown() {
		pd.DefaultDPI = int(data.DefaultDPI.ValueInt64())
	}

	tflog.Debug(ctx, "Configured regen28 provider", map[string]interface{}{
		"default_dpi": pd.DefaultDPI,
	})

	resp.DataSourceData = pd
	resp.ResourceData = pd
}

func (p *Regen28Provider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewDiagramResource,
	}
}

func (p *Regen28Provider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewDiagramDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &Regen28Provider{
			version: version,
		}
	}
}

// resolveDPI falls back to the renderer default when the provider was not
// configured with one.
func resolveDPI(providerDefault int) int {
	if providerDefault > 0 {
		return providerDefault
	}
	return renderer.DefaultDPI
}
