// Package decor provides stock post-processing callbacks for figures
// rendered with gonum.org/v1/plot.
//
// Each callback implements style.PostProcess over a *plot.Plot handle and
// applies the resolved attributes of one component: the title, the axes,
// the grid, a colorbar or the figure background. Frontends register them
// per plot kind, typically through RegisterDefaults.
package decor

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/style"
)

// RegisterDefaults wires the full stock decorator set for kind.
func RegisterDefaults(d *style.Dispatcher, kind string) {
	d.Register(kind, "title", Title)
	d.Register(kind, "xaxis", XAxis)
	d.Register(kind, "yaxis", YAxis)
	d.Register(kind, "grid", Grid)
	d.Register(kind, "colorbar", ColorBar)
	d.Register(kind, "background", Background)
}

func plotHandle(h interface{}, component string) (*plot.Plot, error) {
	p, ok := h.(*plot.Plot)
	if !ok {
		return nil, fmt.Errorf("decor: %s handle is %T, not *plot.Plot", component, h)
	}
	return p, nil
}

// Title applies "text", "color" and "size" to the plot title.
func Title(h interface{}, attrs style.Attrs) error {
	p, err := plotHandle(h, "title")
	if err != nil {
		return err
	}
	if v, ok := attrs.Text("text"); ok {
		p.Title.Text = v
	}
	if v, ok := attrs.Color("color"); ok {
		p.Title.Color = v
	}
	if v, ok := attrs.Length("size"); ok {
		p.Title.Font.Size = v
	}
	return nil
}

// XAxis applies the axis attributes to the x-axis.
func XAxis(h interface{}, attrs style.Attrs) error {
	p, err := plotHandle(h, "xaxis")
	if err != nil {
		return err
	}
	axis(&p.X, attrs)
	return nil
}

// YAxis applies the axis attributes to the y-axis.
func YAxis(h interface{}, attrs style.Attrs) error {
	p, err := plotHandle(h, "yaxis")
	if err != nil {
		return err
	}
	axis(&p.Y, attrs)
	return nil
}

// axis applies "label", "labelcolor", "labelsize", "linewidth",
// "tickcolor", "ticklength" and "ticklabelsize" to ax.
func axis(ax *plot.Axis, attrs style.Attrs) {
	if v, ok := attrs.Text("label"); ok {
		ax.Label.Text = v
	}
	if v, ok := attrs.Color("labelcolor"); ok {
		ax.Label.Color = v
	}
	if v, ok := attrs.Length("labelsize"); ok {
		ax.Label.Font.Size = v
	}
	if v, ok := attrs.Length("linewidth"); ok {
		ax.LineStyle.Width = v
	}
	if v, ok := attrs.Color("tickcolor"); ok {
		ax.Tick.Color = v
	}
	if v, ok := attrs.Length("ticklength"); ok {
		ax.Tick.Length = v
	}
	if v, ok := attrs.Length("ticklabelsize"); ok {
		ax.Tick.Label.Font.Size = v
	}
}

// Grid adds a grid styled by "majorcolor" and "majorwidth".
func Grid(h interface{}, attrs style.Attrs) error {
	p, err := plotHandle(h, "grid")
	if err != nil {
		return err
	}
	g := plotter.NewGrid()
	if v, ok := attrs.Color("majorcolor"); ok {
		g.Vertical.Color = v
		g.Horizontal.Color = v
	}
	if v, ok := attrs.Length("majorwidth"); ok {
		g.Vertical.Width = v
		g.Horizontal.Width = v
	}
	p.Add(g)
	return nil
}

// ColorBar adds a colorbar for the resolved "colormap", ranged over the
// "colorvalues". Without a colormap there is nothing to add; a colormap
// without values never reaches this point, the resolver drops it.
func ColorBar(h interface{}, attrs style.Attrs) error {
	p, err := plotHandle(h, "colorbar")
	if err != nil {
		return err
	}
	cm, ok := attrs["colormap"].(palette.ColorMap)
	if !ok {
		return nil
	}
	vals, ok := attrs.Floats("colorvalues")
	if !ok || len(vals) == 0 {
		return nil
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	cm.SetMin(min)
	cm.SetMax(max)
	p.Add(&plotter.ColorBar{ColorMap: cm})
	return nil
}

// Background applies "background" to the figure background.
func Background(h interface{}, attrs style.Attrs) error {
	p, err := plotHandle(h, "background")
	if err != nil {
		return err
	}
	if v, ok := attrs.Color("background"); ok {
		p.BackgroundColor = v
	}
	return nil
}
