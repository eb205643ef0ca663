package erosion

import (
	"image"

	"github.com/Fepozopo/erosion/pkg/labels"
	"github.com/Fepozopo/erosion/pkg/palette"
	"github.com/Fepozopo/erosion/pkg/quantize"
	"github.com/Fepozopo/erosion/pkg/raster"
	"github.com/Fepozopo/erosion/pkg/sdf"
)

// ChannelResult holds the QI output for a single RGBA channel.
type ChannelResult struct {
	Channel int
	Regions *labels.Result
	SDF     *sdf.Result
	QI      *quantize.Result
}

// RunChannels runs labelling once over a chosen reference channel, then
// runs SDF-L + QI independently per RGBA channel, mirroring
// erosion_dijkstra.c's ErosionDijkstraCmd/ed_Execute: a shared label map
// computed once, four independent per-channel quantized-interpolation
// passes. prevColor is the prev_color[256] adjacency forest (spec §3);
// all four channels share the same forest since it describes the
// palette, not a particular channel's content.
func RunChannels(src *image.NRGBA, connectivity labels.Connectivity, dist sdf.DistanceParams, pal quantize.Palette, prevColor palette.Forest) ([4]ChannelResult, error) {
	var out [4]ChannelResult
	for ch := 0; ch < 4; ch++ {
		values, err := raster.ChannelGrid(src, ch)
		if err != nil {
			return out, InvalidArgument("erosion.RunChannels", err)
		}
		regions := labels.Label(values, connectivity)
		sdfResult, err := sdf.Run(values, regions, prevColor, dist)
		if err != nil {
			return out, err
		}
		qi, err := quantize.Interpolate(values, regions, sdfResult, pal, prevColor)
		if err != nil {
			return out, err
		}
		out[ch] = ChannelResult{Channel: ch, Regions: regions, SDF: sdfResult, QI: qi}
	}
	return out, nil
}
