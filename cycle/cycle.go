// Package cycle derives concrete group styles from visual channels.
//
// Discrete channel levels cycle through fixed sequences of colors, glyph
// shapes and dash patterns; continuous hue values go through a colormap
// and continuous size values through an area-linear size scale. The
// derived styles are handed to the resolver as a style.GroupContext.
package cycle

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/style"
)

// A Cycler maps channel values to concrete styles. The discrete cycles
// wrap around when a figure has more groups than the sequence has
// elements. The continuous ranges must be learned from the data before
// mapping through them.
type Cycler struct {
	Colors []color.Color
	Shapes []draw.GlyphDrawer
	Dashes [][]vg.Length

	// ColorMap maps continuous hue values; its range follows HueRange.
	ColorMap palette.ColorMap
	HueRange Interval

	// SizeRange is the data range of the size channel, SizeOut the
	// display sizes it maps to.
	SizeRange Interval
	SizeOut   Interval
}

// New returns a Cycler with the plotutil default cycles and a smooth
// blue-red colormap.
func New() *Cycler {
	return &Cycler{
		Colors:    plotutil.DefaultColors,
		Shapes:    plotutil.DefaultGlyphShapes,
		Dashes:    plotutil.DefaultDashes,
		ColorMap:  moreland.SmoothBlueRed(),
		HueRange:  UnsetInterval(),
		SizeRange: UnsetInterval(),
		SizeOut:   Interval{2, 10},
	}
}

// Rainbow returns n colors evenly spread over the full hue circle,
// suitable as the Colors sequence for figures with many groups.
func Rainbow(n int) []color.Color {
	return palette.Rainbow(n, palette.Red, palette.Red+1, 1, 1, 1).Colors()
}

// Color returns the discrete color of level i.
func (c *Cycler) Color(i int) color.Color {
	return c.Colors[i%len(c.Colors)]
}

// Shape returns the glyph shape of level i.
func (c *Cycler) Shape(i int) draw.GlyphDrawer {
	return c.Shapes[i%len(c.Shapes)]
}

// Dash returns the dash pattern of level i.
func (c *Cycler) Dash(i int) []vg.Length {
	return c.Dashes[i%len(c.Dashes)]
}

// LearnHue extends the continuous hue range to cover x.
func (c *Cycler) LearnHue(x ...float64) { c.HueRange.Update(x...) }

// LearnSize extends the size data range to cover x.
func (c *Cycler) LearnSize(x ...float64) { c.SizeRange.Update(x...) }

// ColorAt maps the continuous hue value x through the colormap. The hue
// range must have been learned first.
func (c *Cycler) ColorAt(x float64) (color.Color, error) {
	if !c.HueRange.Valid() {
		return nil, fmt.Errorf("cycle: hue range not learned")
	}
	c.ColorMap.SetMin(c.HueRange.Min)
	c.ColorMap.SetMax(c.HueRange.Max)
	return c.ColorMap.At(x)
}

// Size maps the continuous size value x to a display size. The mark area
// grows linearly with x over the learned size range.
func (c *Cycler) Size(x float64) vg.Length {
	return vg.Length(sizeTrans(c.SizeRange, c.SizeOut, x))
}

// factor returns the size of x relative to the midpoint of SizeOut. This
// is the per-group multiplier consumed by the SizeScale fallback.
func (c *Cycler) factor(x float64) float64 {
	mid := (c.SizeOut.Min + c.SizeOut.Max) / 2
	return float64(c.Size(x)) / mid
}

// Context builds the group context of one group. The level is the group's
// position in draw order and drives the discrete cycles; values is the
// channel assignment of the group. A float64 hue value with a learned hue
// range goes through the colormap instead of the discrete cycle, and a
// float64 size value with a learned size range yields the group's size
// style and size factor.
func (c *Cycler) Context(level int, values map[style.Channel]interface{}) *style.GroupContext {
	gc := style.NewGroupContext()
	for ch, v := range values {
		gc.Values[ch] = v
	}

	if v, ok := values[style.HueChannel]; ok {
		var col color.Color
		if x, isFloat := v.(float64); isFloat && c.HueRange.Valid() {
			mapped, err := c.ColorAt(x)
			if err == nil {
				col = mapped
			}
		}
		if col == nil {
			col = c.Color(level)
		}
		gc.Styles["color"] = col
		gc.Styles["fill"] = col
	}

	if _, ok := values[style.MarkerChannel]; ok {
		gc.Styles["shape"] = c.Shape(level)
	}

	if _, ok := values[style.StyleChannel]; ok {
		gc.Styles["dashes"] = c.Dash(level)
	}

	if v, ok := values[style.SizeChannel]; ok {
		if x, isFloat := v.(float64); isFloat && c.SizeRange.Valid() {
			gc.Styles["size"] = c.Size(x)
			gc.SizeFactor = c.factor(x)
		}
	}

	return gc
}
