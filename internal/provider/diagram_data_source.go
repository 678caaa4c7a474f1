package provider

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/regen28/terraform-provider-regen28/internal/interfaces"
	"github.com/regen28/terraform-provider-regen28/internal/validation"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &DiagramDataSource{}
var _ datasource.DataSourceWithConfigure = &DiagramDataSource{}

// DiagramDataSource defines the data source implementation.
type DiagramDataSource struct {
	generator  interfaces.DiagramGenerator
	defaultDPI int
}

func NewDiagramDataSource() datasource.DataSource {
	return &DiagramDataSource{
		generator: NewDiagramGenerator(),
	}
}

// DiagramDataSourceModel describes the data source data model.
type DiagramDataSourceModel struct {
	ID           types.String `tfsdk:"id"`
	OutputPath   types.String `tfsdk:"output_path"`
	Format       types.String `tfsdk:"format"`
	DPI          types.Int64  `tfsdk:"dpi"`
	ScenePath    types.String `tfsdk:"scene_path"`
	ElementCount types.Int64  `tfsdk:"element_count"`
	OutOfBounds  types.List   `tfsdk:"out_of_bounds"`
}

func (d *DiagramDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_diagram"
}

func (d *DiagramDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Renders the ReGen28 architecture diagram, or a scene document, on every read and reports what was drawn.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source identifier",
			},
			"output_path": schema.StringAttribute{
				MarkdownDescription: "Path where the diagram will be saved.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"format": schema.StringAttribute{
				MarkdownDescription: "Output format: 'png', 'jpeg' (or 'jpg') or 'svg'. Default is 'png'.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(formatValues...),
				},
			},
			"dpi": schema.Int64Attribute{
				MarkdownDescription: "Raster resolution in dots per inch. Defaults to the provider's default_dpi, or 300.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(MinDPI, MaxDPI),
				},
			},
			"scene_path": schema.StringAttribute{
				MarkdownDescription: "Path to an HCL scene document. The built-in ReGen28 architecture scene is drawn when omitted.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"element_count": schema.Int64Attribute{
				MarkdownDescription: "Number of elements drawn.",
				Computed:            true,
			},
			"out_of_bounds": schema.ListAttribute{
				MarkdownDescription: "Elements whose footprint leaves the canvas. They are still drawn.",
				ElementType:         types.StringType,
				Computed:            true,
			},
		},
	}
}

func (d *DiagramDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	pd, ok := req.ProviderData.(*providerData)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *providerData, got: %T.", req.ProviderData),
		)
		return
	}

	d.defaultDPI = pd.DefaultDPI
}

func (d *DiagramDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data DiagramDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Set defaults
	format := "png"
	if !data.Format.IsNull() && data.Format.ValueString() != "" {
		format = data.Format.ValueString()
	}

	dpi := resolveDPI(d.defaultDPI)
	if !data.DPI.IsNull() {
		dpi = int(data.DPI.ValueInt64())
	}

	if !validation.ExtensionMatchesFormat(data.OutputPath.ValueString(), format) {
		resp.Diagnostics.AddAttributeWarning(
			path.Root("output_path"),
			"Output extension does not match format",
			fmt.Sprintf("%s will contain %s data.", data.OutputPath.ValueString(), format),
		)
	}

	tflog.Debug(ctx, "Generating diagram", map[string]interface{}{
		"output_path": data.OutputPath.ValueString(),
		"format":      format,
		"dpi":         dpi,
		"scene_path":  data.ScenePath.ValueString(),
	})

	result, err := d.generator.Generate(ctx, DiagramConfig{
		ScenePath:  data.ScenePath.ValueString(),
		OutputPath: data.OutputPath.ValueString(),
		Format:     format,
		DPI:        dpi,
		Trim:       true,
	})
	if err != nil {
		resp.Diagnostics.AddError("Failed to generate diagram", err.Error())
		return
	}

	outside := result.OutOfBounds
	if outside == nil {
		outside = []string{}
	}
	oob, diags := types.ListValueFrom(ctx, types.StringType, outside)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	data.ElementCount = types.Int64Value(result.ElementCount)
	data.OutOfBounds = oob

	// Generate ID based on content
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s_%s_%d_%s", data.OutputPath.ValueString(), format, dpi, data.ScenePath.ValueString())))
	data.ID = types.StringValue(fmt.Sprintf("%x", hash[:8]))

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
