// +build ignore

package main

import (
	"fmt"
	"math/rand"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/style"
	"github.com/vdobler/style/cycle"
	"github.com/vdobler/style/decor"
)

// Three groups of noisy points, one legend entry each.
var groups = []string{"setosa", "versicolor", "virginica"}

func data(g int) plotter.XYs {
	rnd := rand.New(rand.NewSource(int64(g + 1)))
	xy := make(plotter.XYs, 30)
	for i := range xy {
		xy[i].X = rnd.Float64()*4 + float64(g)
		xy[i].Y = rnd.NormFloat64() + 2*float64(g)
	}
	return xy
}

func main() {
	kinds := style.NewKindRegistry()
	kinds.Register(style.Kind{Name: "scatter", Legend: true, Grouped: true})

	schemas := style.NewSchemaRegistry()
	schemas.Register("scatter", style.MainPlot, "main", "color", "size", "shape")
	schemas.Register("scatter", style.PostProcessing, "title", "text", "color", "size")
	schemas.Register("scatter", style.PostProcessing, "grid", "majorcolor", "majorwidth")
	schemas.Register("scatter", style.PostProcessing, "background", "background")
	schemas.RegisterFallback("scatter", style.MainPlot, "main", "size",
		style.Fallback{Op: style.SizeScale, Base: vg.Length(3)})

	resolver := style.NewResolver(schemas)
	theme := style.DefaultTheme(12)
	params := style.NewParams().
		Set("title_text", "Sepal width by species").
		Set("main_size", vg.Length(2.5))

	dispatcher := style.NewDispatcher()
	decor.RegisterDefaults(dispatcher, "scatter")

	legends := style.NewLegendRegistry(kinds)
	cyc := cycle.New()

	p, err := plot.New()
	if err != nil {
		panic(err)
	}

	for g, name := range groups {
		gc := cyc.Context(g, map[style.Channel]interface{}{
			style.HueChannel:    name,
			style.MarkerChannel: name,
		})

		attrs, err := resolver.Resolve("scatter", "main", nil,
			style.MainPlot, gc, params, theme)
		if err != nil {
			panic(err)
		}

		sc, err := plotter.NewScatter(data(g))
		if err != nil {
			panic(err)
		}
		if col, ok := attrs.Color("color"); ok {
			sc.GlyphStyle.Color = col
		}
		if r, ok := attrs.Length("size"); ok {
			sc.GlyphStyle.Radius = r
		}
		if sh, ok := attrs["shape"].(draw.GlyphDrawer); ok {
			sc.GlyphStyle.Shape = sh
		}
		p.Add(sc)

		legends.Add("scatter", sc, name, "ax1", style.HueChannel)
	}

	styles, err := resolver.ResolvePhase("scatter", style.PostProcessing,
		nil, params, theme)
	if err != nil {
		panic(err)
	}
	handles := map[string]interface{}{
		"title": p, "grid": p, "background": p,
	}
	if err := dispatcher.Dispatch("scatter", handles, styles); err != nil {
		panic(err)
	}

	img := vgimg.New(500, 350)
	dc := draw.New(img)
	plotArea := dc
	plotArea.Max.X -= 120 // room for the legend
	p.Draw(plotArea)

	placed, err := legends.Finalize(style.DedupPerAxis,
		style.Placement{Position: "right", Inset: 10},
		style.DefaultLegendStyle(12))
	if err != nil {
		panic(err)
	}
	for _, l := range placed {
		l.Draw(dc)
	}

	write(img, "testdata/style-demo.png")
	fmt.Println("wrote testdata/style-demo.png")
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
