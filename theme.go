package style

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Attrs

// Attrs is a flat attribute map as produced by one resolution call and as
// stored in the buckets of a Theme. Values are heterogeneous: colors,
// vg.Lengths, floats, strings, colormaps, whole slices of dash lengths.
type Attrs map[string]interface{}

// Copy returns an independent copy of a.
func (a Attrs) Copy() Attrs {
	c := make(Attrs, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// ----------------------------------------------------------------------------
// Phase

// A Phase is one of the four rendering stages at which styling applies.
type Phase int

const (
	MainPlot Phase = iota
	PostProcessing
	AxisLevel
	FigureLevel
	numPhases
)

var phaseNames = []string{"main-plot", "post-processing", "axis", "figure"}

// String returns the name of phase p.
func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		panic(p)
	}
	return phaseNames[p]
}

// ParsePhase maps a phase name to its Phase. Unknown names are an error:
// a misspelled phase in a theme definition must not silently become an
// empty bucket.
func ParsePhase(name string) (Phase, error) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("style: unknown phase %q", name)
}

// General is the bucket name for attributes which apply in all phases.
const General = "general"

// ----------------------------------------------------------------------------
// Theme

// A Theme is a named, optionally parented store of style attributes,
// organized in one bucket per phase plus a general bucket. A Theme is
// built once and must not be modified afterwards; all resolution calls of
// a render pass share it read-only.
type Theme struct {
	Name string

	parent  *Theme
	phase   [numPhases]Attrs
	general Attrs
}

// NewTheme builds a theme from buckets keyed by phase name ("main-plot",
// "post-processing", "axis", "figure") or "general". An unknown bucket
// name is a construction error, as is a parent whose chain contains a
// cycle.
func NewTheme(name string, parent *Theme, buckets map[string]Attrs) (*Theme, error) {
	t := &Theme{Name: name, parent: parent}
	for i := range t.phase {
		t.phase[i] = Attrs{}
	}
	t.general = Attrs{}

	for bucket, attrs := range buckets {
		target := t.general
		if bucket != General {
			p, err := ParsePhase(bucket)
			if err != nil {
				return nil, fmt.Errorf("style: theme %q: %v", name, err)
			}
			target = t.phase[p]
		}
		for k, v := range attrs {
			target[k] = v
		}
	}

	seen := map[*Theme]bool{t: true}
	for a := parent; a != nil; a = a.parent {
		if seen[a] {
			return nil, fmt.Errorf("style: theme %q: cycle in parent chain", name)
		}
		seen[a] = true
	}

	return t, nil
}

// Parent returns the theme t inherits from, or nil.
func (t *Theme) Parent() *Theme { return t.parent }

// Lookup returns the value of key in phase p. The phase bucket is
// consulted first, then the general bucket, then the parent chain; def is
// returned if the chain is exhausted. A missing key is not an error.
func (t *Theme) Lookup(key string, p Phase, def interface{}) interface{} {
	if v, ok := t.lookup(key, p); ok {
		return v
	}
	return def
}

func (t *Theme) lookup(key string, p Phase) (interface{}, bool) {
	if p < 0 || p >= numPhases {
		panic(p)
	}
	for cur := t; cur != nil; cur = cur.parent {
		if v, ok := cur.phase[p][key]; ok {
			return v, true
		}
		if v, ok := cur.general[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// ----------------------------------------------------------------------------
// Default theme

// DefaultTheme returns a base theme which mimics the appearance of ggplot2.
// The base is the font size of axis labels, titles are a bit bigger, tick
// and legend labels a bit smaller.
func DefaultTheme(base vg.Length) *Theme {
	scale := func(f float64) vg.Length {
		return vg.Length(f * float64(base))
	}

	t, err := NewTheme("default", nil, map[string]Attrs{
		General: {
			"font":  "Helvetica",
			"alpha": 1.0,
		},
		"main-plot": {
			"color":     color.Gray16{0x3333},
			"fill":      color.Gray16{0x3333},
			"size":      vg.Length(3),
			"linewidth": vg.Length(1),
			"dashes":    []vg.Length(nil),
		},
		"post-processing": {
			"color":      color.Black,
			"size":       base,
			"majorcolor": color.White,
			"majorwidth": vg.Length(1),
			"minorcolor": color.White,
			"minorwidth": vg.Length(0.5),
		},
		"axis": {
			"labelcolor":    color.Black,
			"labelsize":     base,
			"ticklabelsize": scale(1 / 1.2),
			"tickcolor":     color.Gray16{0x1111},
			"ticklength":    vg.Length(5),
			"linewidth":     vg.Length(0),
		},
		"figure": {
			"background":     color.Transparent,
			"titlecolor":     color.Black,
			"titlesize":      scale(1.2),
			"legendfontsize": scale(1 / 1.2),
			"legendpad":      vg.Length(4),
			"legendthumb":    vg.Length(20),
		},
	})
	if err != nil {
		panic(err)
	}
	return t
}
