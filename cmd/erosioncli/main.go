// Command erosioncli is the interactive host for the erosion pipeline: a
// single-rune REPL whose stage picker is driven by pkg/erosion's
// CommandSpec registry.
package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/Fepozopo/erosion/pkg/blur"
	"github.com/Fepozopo/erosion/pkg/cli"
	"github.com/Fepozopo/erosion/pkg/contour"
	"github.com/Fepozopo/erosion/pkg/erosion"
	"github.com/Fepozopo/erosion/pkg/field"
	"github.com/Fepozopo/erosion/pkg/flood"
	"github.com/Fepozopo/erosion/pkg/labels"
	"github.com/Fepozopo/erosion/pkg/palette"
	"github.com/Fepozopo/erosion/pkg/quantize"
	"github.com/Fepozopo/erosion/pkg/raster"
	"github.com/Fepozopo/erosion/pkg/sdf"
	"github.com/Fepozopo/erosion/pkg/semver"

	"github.com/joho/godotenv"
)

// version is parsed at startup so help text and update checks report a
// structured semver.Version rather than a bare string.
var version = mustParseVersion("0.1.0")

func mustParseVersion(s string) semver.Version {
	v, err := semver.Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  /  - select and run a pipeline stage")
	fmt.Println("  o  - open another quantized source image")
	fmt.Println("  s  - save the current stage's debug PNG")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

func main() {
	// .env may set environment overrides (such as pkg/cli's preview
	// settings); stage parameters are not read from it. Absence is not an
	// error.
	_ = godotenv.Load()

	var inputPath string
	if len(os.Args) >= 2 {
		inputPath = os.Args[1]
	}

	var current *image.NRGBA
	if inputPath != "" {
		img, format, err := cli.LoadImage(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputPath, err)
			os.Exit(erosion.CodeInvalidArgument.ExitStatus())
		}
		current = raster.ToNRGBA(img)
		_ = cli.PreviewImage(current, format)
		if info, err := cli.GetImageInfoImage(current); err == nil {
			fmt.Println(info)
		}
	}

	fmt.Printf("Quantized Height-Field Erosion Toolkit v%s\n", version.String())
	usage()

	reader := bufio.NewReader(os.Stdin)
	var lastDebug image.Image

	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case '/':
			if current == nil {
				fmt.Println("No source image loaded. Press 'o' first, or pass a path as the first argument.")
				continue
			}
			name, err := cli.SelectCommandWithFzf(erosion.Commands)
			if err != nil || name == "" {
				fmt.Println("Pipeline stages:")
				for i, c := range erosion.Commands {
					fmt.Printf("  %d) %s - %s\n", i+1, c.Name, c.Description)
				}
				name, _ = cli.PromptLine("Enter stage name (empty to cancel): ")
				if name == "" {
					continue
				}
			}
			img, err := runStage(name, current)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s failed: %v\n", name, err)
				continue
			}
			lastDebug = img
			fmt.Printf("%s complete\n", name)

		case 'o':
			path, _ := cli.PromptLine("Path to quantized source image: ")
			if path == "" {
				continue
			}
			img, format, err := cli.LoadImage(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", path, err)
				continue
			}
			current = raster.ToNRGBA(img)
			inputPath = path
			_ = cli.PreviewImage(current, format)
			if info, err := cli.GetImageInfoImage(current); err == nil {
				fmt.Println(info)
			}

		case 's':
			if lastDebug == nil {
				fmt.Println("Nothing to save yet; run a stage with '/' first.")
				continue
			}
			out, _ := cli.PromptLine("Output path: ")
			if out == "" {
				continue
			}
			if err := cli.SaveImage(out, lastDebug); err != nil {
				fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
				continue
			}
			fmt.Println("saved", out)

		case 'u':
			if err := cli.CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check failed: %v\n", err)
			}

		case 'h':
			usage()

		case 'q':
			return
		}
	}
}

// runStage dispatches one pipeline stage by name over the current
// source image, returning a debug-visualizable image.Image result.
func runStage(name string, src *image.NRGBA) (image.Image, error) {
	values, err := raster.ChannelGrid(src, 0)
	if err != nil {
		return nil, err
	}

	switch name {
	case "label":
		res := labels.Label(values, labels.Connect4)
		return labelsToImage(res), nil

	case "sdf":
		regions := labels.Label(values, labels.Connect4)
		prevColor, err := promptForest()
		if err != nil {
			return nil, err
		}
		res, err := sdf.Run(values, regions, prevColor, sdf.DistanceParams{})
		if err != nil {
			return nil, err
		}
		return sdfToImage(res), nil

	case "quantize":
		regions := labels.Label(values, labels.Connect4)
		prevColor, err := promptForest()
		if err != nil {
			return nil, err
		}
		dist, err := sdf.Run(values, regions, prevColor, sdf.DistanceParams{})
		if err != nil {
			return nil, err
		}
		var pal quantize.Palette
		for i := range pal {
			pal[i] = float64(i)
		}
		res, err := quantize.Interpolate(values, regions, dist, pal, prevColor)
		if err != nil {
			return nil, err
		}
		return scalarToImage(res.Width, res.Height, res.Output, 255), nil

	case "flood":
		seeds := []flood.Seed{{X: 0, Y: 0, Value: 0}}
		res, err := flood.Execute(values.Width, values.Height, seeds, flood.Connect4, flood.RuleDistance, 0, nil)
		if err != nil {
			return nil, err
		}
		return scalarToImage(res.Width, res.Height, res.Values, 0), nil

	case "field":
		h := toHeightField(values)
		grad := field.Gradient(h)
		mag := make([]float64, len(grad.X))
		for i := range mag {
			mag[i] = grad.X[i]*grad.X[i] + grad.Y[i]*grad.Y[i]
		}
		return scalarToImage(h.Width, h.Height, mag, 0), nil

	case "contour":
		h := toHeightField(values)
		res := contour.Execute(h, contour.Params{RidgeMode: contour.RidgeModeBoth, RidgeThreshold: 0.1, InfluenceFalloff: 0.5})
		return scalarToImage(res.Width, res.Height, res.RidgeStrength.Data, 0), nil

	case "blur":
		h := toHeightField(values)
		ctx := blur.NewContext(h)
		lo := raster.NewScalarGrid(h.Width, h.Height)
		hi := raster.NewScalarGrid(h.Width, h.Height)
		for i := range hi.Data {
			hi.Data[i] = 255
		}
		ctx.SetConstraints(lo, hi)
		ctx.RunUntilConverged(0.5, 64)
		return scalarToImage(h.Width, h.Height, ctx.Values().Data, 0), nil

	default:
		return nil, fmt.Errorf("unknown stage %q", name)
	}
}

// promptForest asks for an optional prev_color[256] adjacency forest file
// (the "adjacency" ArgSpec on the sdf/quantize CommandSpecs) and parses it
// with palette.ParseForest; an empty answer falls back to the identity
// ladder, the contiguous-palette case.
func promptForest() (palette.Forest, error) {
	path, _ := cli.PromptLine("prev_color adjacency file (empty for identity ladder): ")
	if path == "" {
		return palette.IdentityForest(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return palette.Forest{}, fmt.Errorf("open adjacency file %s: %w", path, err)
	}
	defer f.Close()
	forest, err := palette.ParseForest(f)
	if err != nil {
		return palette.Forest{}, err
	}
	return forest, nil
}

func toHeightField(values *raster.LabelGrid) *raster.ScalarGrid {
	g := raster.NewScalarGrid(values.Width, values.Height)
	for i, v := range values.Data {
		g.Data[i] = float64(v)
	}
	return g
}

func labelsToImage(res *labels.Result) image.Image {
	img := image.NewGray(image.Rect(0, 0, res.Labels.Width, res.Labels.Height))
	for y := 0; y < res.Labels.Height; y++ {
		for x := 0; x < res.Labels.Width; x++ {
			v := res.Labels.At(x, y)
			g := uint8(0)
			if v >= 0 && res.NumRegions > 0 {
				g = uint8(255 * int(v) / maxInt(res.NumRegions, 1))
			}
			img.SetGray(x, y, color.Gray{Y: g})
		}
	}
	return img
}

func sdfToImage(res *sdf.Result) image.Image {
	data := make([]float64, res.Width*res.Height)
	for i, c := range res.Cells {
		data[i] = c.DistLower
	}
	return scalarToImage(res.Width, res.Height, data, 0)
}

func scalarToImage(w, h int, data []float64, fixedMax float64) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	max := fixedMax
	if max <= 0 {
		for _, v := range data {
			if v > max {
				max = v
			}
		}
	}
	if max == 0 {
		max = 1
	}
	for i, v := range data {
		g := uint8(raster.ClampFloat64(255*v/max, 0, 255))
		img.SetGray(i%w, i/w, color.Gray{Y: g})
	}
	return img
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
