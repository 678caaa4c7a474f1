package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringdefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/regen28/terraform-provider-regen28/internal/interfaces"
	"github.com/regen28/terraform-provider-regen28/internal/validation"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &DiagramResource{}
var _ resource.ResourceWithConfigure = &DiagramResource{}
var _ resource.ResourceWithImportState = &DiagramResource{}

// formatValues are the output formats accepted in configuration
var formatValues = []string{"png", "jpeg", "jpg", "svg"}

func NewDiagramResource() resource.Resource {
	return &DiagramResource{
		generator: NewDiagramGenerator(),
	}
}

// DiagramResource defines the resource implementation.
type DiagramResource struct {
	generator  interfaces.DiagramGenerator
	defaultDPI int
}

// DiagramResourceModel describes the resource data model.
type DiagramResourceModel struct {
	ID           types.String `tfsdk:"id"`
	OutputPath   types.String `tfsdk:"output_path"`
	Format       types.String `tfsdk:"format"`
	DPI          types.Int64  `tfsdk:"dpi"`
	ScenePath    types.String `tfsdk:"scene_path"`
	ElementCount types.Int64  `tfsdk:"element_count"`
}

func (r *DiagramResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_diagram"
}

func (r *DiagramResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Renders the ReGen28 wellness platform architecture diagram, or a scene document, to an image file.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Resource identifier",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"output_path": schema.StringAttribute{
				MarkdownDescription: "Path where the diagram will be saved. An existing file is overwritten.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"format": schema.StringAttribute{
				MarkdownDescription: "Output format: 'png', 'jpeg' (or 'jpg') or 'svg'. Default is 'png'.",
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString("png"),
				Validators: []validator.String{
					stringvalidator.OneOf(formatValues...),
				},
			},
			"dpi": schema.Int64Attribute{
				MarkdownDescription: "Raster resolution in dots per inch. Defaults to the provider's default_dpi, or 300. When unset, the default is re-read whenever the diagram is regenerated.",
				Optional:            true,
				Computed:            true,
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
		},
	}
}

func (r *DiagramResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	pd, ok := req.ProviderData.(*providerData)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *providerData, got: %T.", req.ProviderData),
		)
		return
	}

	r.defaultDPI = pd.DefaultDPI
}

func (r *DiagramResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(r.generate(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *DiagramResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Check if output file still exists
	if _, err := os.Stat(data.OutputPath.ValueString()); os.IsNotExist(err) {
		tflog.Info(ctx, "Diagram file no longer exists, removing from state", map[string]interface{}{
			"output_path": data.OutputPath.ValueString(),
		})
		resp.State.RemoveResource(ctx)
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *DiagramResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Re-render with the updated configuration
	resp.Diagnostics.Append(r.generate(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *DiagramResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// The rendered file is kept
	tflog.Debug(ctx, "Leaving diagram file in place", map[string]interface{}{
		"output_path": data.OutputPath.ValueString(),
	})
}

func (r *DiagramResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}

// generate fills in defaults, renders the diagram and stores the computed
// attributes on data.
func (r *DiagramResource) generate(ctx context.Context, data *DiagramResourceModel) diag.Diagnostics {
	var diags diag.Diagnostics

	if data.Format.IsNull() || data.Format.IsUnknown() {
		data.Format = types.StringValue("png")
	}
	if data.DPI.IsNull() || data.DPI.IsUnknown() {
		data.DPI = types.Int64Value(int64(resolveDPI(r.defaultDPI)))
	}

	cfg := DiagramConfig{
		ScenePath:  data.ScenePath.ValueString(),
		OutputPath: data.OutputPath.ValueString(),
		Format:     data.Format.ValueString(),
		DPI:        int(data.DPI.ValueInt64()),
		Trim:       true,
	}

	if !validation.ExtensionMatchesFormat(cfg.OutputPath, cfg.Format) {
		diags.AddAttributeWarning(
			path.Root("output_path"),
			"Output extension does not match format",
			fmt.Sprintf("%s will contain %s data.", cfg.OutputPath, cfg.Format),
		)
	}

	tflog.Debug(ctx, "Generating diagram", map[string]interface{}{
		"output_path": cfg.OutputPath,
		"format":      cfg.Format,
		"dpi":         cfg.DPI,
		"scene_path":  cfg.ScenePath,
	})

	result, err := r.generator.Generate(ctx, cfg)
	if err != nil {
		diags.AddError("Failed to generate diagram", err.Error())
		return diags
	}

	for _, oob := range result.OutOfBounds {
		diags.AddWarning("Element outside canvas", oob)
	}

	tflog.Info(ctx, "Generated diagram", map[string]interface{}{
		"output_path":   result.OutputPath,
		"scene":         result.SceneName,
		"element_count": result.ElementCount,
	})

	data.ID = types.StringValue(fmt.Sprintf("%s_%s", cfg.OutputPath, cfg.Format))
	data.ElementCount = types.Int64Value(result.ElementCount)

	return diags
}
