package style

import (
	"image/color"
	"reflect"
	"testing"
)

func scatterSchemas() *SchemaRegistry {
	s := NewSchemaRegistry()
	s.Register("scatter", MainPlot, "main",
		"marker_size", "color", "fill", "size", "shape", "dashes",
		"colormap", "colorvalues")
	s.Register("scatter", MainPlot, "grid", "color", "linewidth")
	s.Register("scatter", PostProcessing, "title", "text", "color", "size")
	s.Register("scatter", PostProcessing, "grid", "majorcolor", "majorwidth")
	return s
}

func TestResolveExplicitWins(t *testing.T) {
	// Scenario A: an explicit parameter beats the base theme.
	r := NewResolver(scatterSchemas())
	theme := mustTheme(t, "base", nil, map[string]Attrs{
		"main-plot": {"marker_size": 50},
	})
	params := NewParams().Set("marker_size", 20)

	got, err := r.Resolve("scatter", "main", NewStringSetFrom("marker_size"),
		MainPlot, nil, params, theme)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := Attrs{"marker_size": 20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolvePlotThemeBeatsBase(t *testing.T) {
	// Scenario B: the plot kind's theme layer beats the base theme.
	r := NewResolver(scatterSchemas())
	theme := mustTheme(t, "base", nil, map[string]Attrs{
		"main-plot": {
			"marker_size":         50,
			"scatter.marker_size": 30,
		},
	})

	got, err := r.Resolve("scatter", "main", NewStringSetFrom("marker_size"),
		MainPlot, nil, NewParams(), theme)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got["marker_size"] != 30 {
		t.Errorf("marker_size = %v, want 30 from plot theme", got["marker_size"])
	}
}

// The full precedence chain for one attribute; sources are removed from
// the top one by one and the winner must follow.
func TestResolvePrecedence(t *testing.T) {
	r := NewResolver(scatterSchemas())
	theme := mustTheme(t, "base", nil, map[string]Attrs{
		"main-plot": {
			"color":         "base-theme",
			"scatter.color": "plot-theme",
		},
	})
	gc := NewGroupContext()
	gc.Styles["color"] = "group"
	fullParams := func() *Params {
		return NewParams().Set("main_color", "prefixed").Set("color", "plain")
	}

	steps := []struct {
		name   string
		params *Params
		gc     *GroupContext
		theme  *Theme
		want   interface{}
	}{
		{"prefixed", fullParams(), gc, theme, "prefixed"},
		{"plain", NewParams().Set("color", "plain"), gc, theme, "plain"},
		{"group", NewParams(), gc, theme, "group"},
		{"plot-theme", NewParams(), nil, theme, "plot-theme"},
	}

	for _, tc := range steps {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Resolve("scatter", "main", NewStringSetFrom("color"),
				MainPlot, tc.gc, tc.params, tc.theme)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if got["color"] != tc.want {
				t.Errorf("color = %v, want %v", got["color"], tc.want)
			}
		})
	}

	// Base theme last.
	base := mustTheme(t, "b", nil, map[string]Attrs{
		"main-plot": {"color": "base-theme"},
	})
	got, err := r.Resolve("scatter", "main", NewStringSetFrom("color"),
		MainPlot, nil, NewParams(), base)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got["color"] != "base-theme" {
		t.Errorf("color = %v, want base-theme", got["color"])
	}
}

func TestResolveSchemaContainment(t *testing.T) {
	r := NewResolver(scatterSchemas())
	params := NewParams().
		Set("color", "red").
		Set("junk", 1).          // not in any schema
		Set("main_extra", true). // prefixed: explicit intent
		Set("linewidth", 3)      // in grid's schema, not in main's

	got, err := r.Resolve("scatter", "main", nil, MainPlot, nil, params, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	declared := r.Schemas.Get("scatter", MainPlot)["main"]
	for k := range got {
		if k == "extra" {
			continue // prefixed override may leave the schema
		}
		if !declared.Contains(k) {
			t.Errorf("result contains %q outside the schema", k)
		}
	}
	if got["extra"] != true {
		t.Errorf("prefixed override extra missing: %v", got)
	}
	if _, ok := got["junk"]; ok {
		t.Errorf("junk parameter leaked into result")
	}
	if _, ok := got["linewidth"]; ok {
		t.Errorf("grid attribute leaked into main")
	}
}

func TestResolveClaimedParameter(t *testing.T) {
	// main's schema declares an attribute literally named "grid_color",
	// but a parameter of that name belongs to the grid component.
	s := NewSchemaRegistry()
	s.Register("heat", MainPlot, "main", "color", "grid_color")
	s.Register("heat", MainPlot, "grid", "color")
	r := NewResolver(s)
	params := NewParams().Set("grid_color", "red")

	got, err := r.Resolve("heat", "main", nil, MainPlot, nil, params, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, ok := got["grid_color"]; ok {
		t.Errorf("main stole grid's prefixed parameter: %v", got)
	}

	got, err = r.Resolve("heat", "grid", nil, MainPlot, nil, params, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got["color"] != "red" {
		t.Errorf("grid color = %v, want red", got["color"])
	}
}

func TestResolveUnknownComponent(t *testing.T) {
	r := NewResolver(scatterSchemas())
	got, err := r.Resolve("scatter", "colorbar", nil, MainPlot, nil, NewParams(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown component resolved to %v, want empty", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := NewResolver(scatterSchemas())
	theme := DefaultTheme(12)
	gc := NewGroupContext()
	gc.Styles["color"] = color.RGBA{R: 0xff, A: 0xff}
	params := NewParams().Set("size", 4).Set("main_shape", 2)

	a, err := r.Resolve("scatter", "main", nil, MainPlot, gc, params, theme)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b, err := r.Resolve("scatter", "main", nil, MainPlot, gc, params, theme)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two identical calls differ:\n%v\n%v", a, b)
	}
}

func TestResolveColormapCleanup(t *testing.T) {
	r := NewResolver(scatterSchemas())
	theme := mustTheme(t, "base", nil, map[string]Attrs{
		"main-plot": {"colormap": "viridis-ish"},
	})

	got, err := r.Resolve("scatter", "main", nil, MainPlot, nil, NewParams(), theme)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, ok := got["colormap"]; ok {
		t.Errorf("colormap without colorvalues survived: %v", got)
	}

	params := NewParams().Set("colorvalues", []float64{1, 2, 3})
	got, err = r.Resolve("scatter", "main", nil, MainPlot, nil, params, theme)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, ok := got["colormap"]; !ok {
		t.Errorf("colormap with colorvalues dropped: %v", got)
	}
}

func TestResolveFallbacks(t *testing.T) {
	s := scatterSchemas()
	s.RegisterFallback("scatter", MainPlot, "main", "size",
		Fallback{Op: SizeScale, Base: 5.0})
	s.RegisterFallback("scatter", PostProcessing, "title", "color",
		Fallback{Op: ConditionalDefault,
			Choice:  map[string]interface{}{"title": color.Black},
			Default: color.White})
	s.RegisterFallback("scatter", PostProcessing, "grid", "majorcolor",
		Fallback{Op: ConditionalDefault,
			Choice: map[string]interface{}{"title": color.Black}})
	r := NewResolver(s)

	// Size scaling only with an active group multiplier.
	gc := NewGroupContext()
	gc.SizeFactor = 2
	got, err := r.Resolve("scatter", "main", NewStringSetFrom("size"),
		MainPlot, gc, NewParams(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got["size"] != 10.0 {
		t.Errorf("size = %v, want 10 (5 scaled by 2)", got["size"])
	}

	got, err = r.Resolve("scatter", "main", NewStringSetFrom("size"),
		MainPlot, nil, NewParams(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, ok := got["size"]; ok {
		t.Errorf("size emitted without a group multiplier: %v", got)
	}

	// Component-conditional default.
	got, err = r.Resolve("scatter", "title", NewStringSetFrom("color"),
		PostProcessing, nil, NewParams(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got["color"] != color.Black {
		t.Errorf("title color = %v, want black", got["color"])
	}

	// No choice for this component and no default: nothing emitted.
	got, err = r.Resolve("scatter", "grid", NewStringSetFrom("majorcolor"),
		PostProcessing, nil, NewParams(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, ok := got["majorcolor"]; ok {
		t.Errorf("majorcolor emitted without choice or default: %v", got)
	}
}

func TestResolveUnsupportedFallback(t *testing.T) {
	s := scatterSchemas()
	s.RegisterFallback("scatter", MainPlot, "main", "size",
		Fallback{Op: "interpolate"})
	r := NewResolver(s)

	_, err := r.Resolve("scatter", "main", NewStringSetFrom("size"),
		MainPlot, nil, NewParams(), nil)
	if err == nil {
		t.Fatalf("unsupported fallback operation did not fail")
	}
}

func TestResolvePhase(t *testing.T) {
	r := NewResolver(scatterSchemas())
	theme := mustTheme(t, "base", nil, map[string]Attrs{
		"post-processing": {"text": "A Title", "majorcolor": color.White},
	})

	got, err := r.ResolvePhase("scatter", PostProcessing, nil, NewParams(), theme)
	if err != nil {
		t.Fatalf("ResolvePhase failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ResolvePhase resolved %d components, want 2", len(got))
	}
	if got["title"]["text"] != "A Title" {
		t.Errorf("title = %v", got["title"])
	}
	if got["grid"]["majorcolor"] != color.White {
		t.Errorf("grid = %v", got["grid"])
	}
}
