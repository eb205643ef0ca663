// Package blur implements the constraint-clamped "smart blur": an
// iterated 3x3 box blur whose result at every cell is clamped to a
// per-cell [lo,hi] bound, double-buffered until the maximum per-pixel
// change drops below a threshold or an iteration cap is hit.
//
// Grounded on erosion/src/smart_blur.{h,c}: SmartBlurContext,
// sb_Initialize, sb_SetConstraints, sb_Iterate, sb_RunUntilConverged.
package blur

import "github.com/Fepozopo/erosion/pkg/raster"

// Context holds the working buffers for an iterated smart-blur run,
// mirroring SmartBlurContext{width,height,values,min_values,max_values,temp_values}.
type Context struct {
	width, height int
	values        []float64
	minValues     []float64
	maxValues     []float64
	temp          []float64
}

// NewContext allocates a blur context over a width x height grid seeded
// with initial, mirroring sb_Initialize.
func NewContext(initial *raster.ScalarGrid) *Context {
	n := initial.Width * initial.Height
	c := &Context{
		width:     initial.Width,
		height:    initial.Height,
		values:    append([]float64(nil), initial.Data...),
		minValues: make([]float64, n),
		maxValues: make([]float64, n),
		temp:      make([]float64, n),
	}
	for i := range c.maxValues {
		c.maxValues[i] = initial.Data[i]
		c.minValues[i] = initial.Data[i]
	}
	return c
}

// SetConstraints installs per-cell [lo,hi] clamp bounds and immediately
// clamps the current values into range, mirroring sb_SetConstraints.
func (c *Context) SetConstraints(lo, hi *raster.ScalarGrid) {
	copy(c.minValues, lo.Data)
	copy(c.maxValues, hi.Data)
	for i := range c.values {
		c.values[i] = raster.ClampFloat64(c.values[i], c.minValues[i], c.maxValues[i])
	}
}

// GetValue returns the current value at (x,y), mirroring sb_GetValue.
func (c *Context) GetValue(x, y int) float64 { return c.values[y*c.width+x] }

// Iterate runs one 3x3 box blur pass, clamping each cell's new value to
// its own [lo,hi] bound, and returns the maximum absolute change
// observed, mirroring sb_Iterate.
func (c *Context) Iterate() float64 {
	w, h := c.width, c.height
	var maxChange float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			var sum float64
			var count int
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					nx, ny := x+ox, y+oy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					sum += c.values[ny*w+nx]
					count++
				}
			}
			avg := sum / float64(count)
			clamped := raster.ClampFloat64(avg, c.minValues[idx], c.maxValues[idx])
			change := clamped - c.values[idx]
			if change < 0 {
				change = -change
			}
			if change > maxChange {
				maxChange = change
			}
			c.temp[idx] = clamped
		}
	}
	c.values, c.temp = c.temp, c.values
	return maxChange
}

// RunUntilConverged repeatedly calls Iterate until the maximum per-pixel
// change drops below threshold or maxIterations is reached, mirroring
// sb_RunUntilConverged. It returns the iteration count actually run, or
// maxIterations itself (unchanged) to signal non-convergence, matching
// the original's soft-cap sentinel return value.
func (c *Context) RunUntilConverged(threshold float64, maxIterations int) int {
	for i := 1; i <= maxIterations; i++ {
		change := c.Iterate()
		if change < threshold {
			return i
		}
	}
	return maxIterations
}

// Values returns the current buffer as a ScalarGrid.
func (c *Context) Values() *raster.ScalarGrid {
	g := raster.NewScalarGrid(c.width, c.height)
	copy(g.Data, c.values)
	return g
}
