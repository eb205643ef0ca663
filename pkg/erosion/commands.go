// Commands is the authoritative registry of pipeline stages: a single
// source-of-truth ArgSpec/CommandSpec table that cmd/erosioncli lists in
// its fzf stage picker and in its fallback stage list.
package erosion

// ArgSpec describes a single stage argument, for help/validation UI.
type ArgSpec struct {
	Name        string
	Type        string
	Required    bool
	Default     string
	Description string
}

// CommandSpec defines one pipeline stage and its arguments.
type CommandSpec struct {
	Name        string
	Args        []ArgSpec
	Usage       string
	Description string
}

// Commands is the authoritative list of pipeline stages implemented by
// this module. Keep synchronized with the runStage dispatcher in
// cmd/erosioncli/main.go.
var Commands = []CommandSpec{
	{
		Name:        "label",
		Args:        []ArgSpec{{"connectivity", "int", false, "4", "4 or 8 connectivity"}},
		Usage:       "label [connectivity]",
		Description: "Connected-component labelling of a quantized source grid.",
	},
	{
		Name: "sdf",
		Args: []ArgSpec{
			{"minkowski", "float", false, "2", "Lp exponent"},
			{"chebyshev", "bool", false, "false", "use Chebyshev distance instead"},
			{"adjacency", "path", false, "", "prev_color[256] forest file; identity ladder if omitted"},
		},
		Usage:       "sdf [minkowski] [chebyshev] [adjacency]",
		Description: "Layered signed-distance transform per region, searching the prev_color/next_color adjacency forest.",
	},
	{
		Name: "quantize",
		Args: []ArgSpec{
			{"adjacency", "path", false, "", "prev_color[256] forest file; identity ladder if omitted"},
		},
		Usage:       "quantize [adjacency]",
		Description: "Quantized interpolation from SDF-L distances, a palette, and the prev_color adjacency forest.",
	},
	{
		Name:        "flood",
		Args:        []ArgSpec{{"rule", "string", true, "", "distance|chamfer|weighted_avg|min|max|average"}, {"connectivity", "int", false, "4", "4 or 8 connectivity"}},
		Usage:       "flood <rule> [connectivity]",
		Description: "Pluggable rule-based priority-queue flood fill.",
	},
	{
		Name:        "field",
		Args:        []ArgSpec{{"op", "string", true, "", "gradient|normal|divergence|poisson|helmholtz|swirl|height-from-normals|fluid"}},
		Usage:       "field <op>",
		Description: "Height-field operators.",
	},
	{
		Name:        "contour",
		Args:        []ArgSpec{{"mode", "string", false, "both", "peaks|valleys|both|saddles"}},
		Usage:       "contour [mode]",
		Description: "Contour-flow driver: ridge detection plus chirality-seeded tangent flow.",
	},
	{
		Name:        "blur",
		Args:        []ArgSpec{{"threshold", "float", false, "0.01", "convergence threshold"}, {"maxIterations", "int", false, "64", "iteration cap"}},
		Usage:       "blur [threshold] [maxIterations]",
		Description: "Constraint-clamped iterated smart blur.",
	},
	{
		Name:        "envelope",
		Args:        []ArgSpec{{"resolution", "int", false, "16", "voxel texture resolution"}},
		Usage:       "envelope [resolution]",
		Description: "Two-pass envelope and gradient-texture builder over a video's frames.",
	},
}
