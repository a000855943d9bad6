package style

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Resolver

// A Resolver merges the resolution sources of one plot into final
// attribute maps. The zero value is not usable; use NewResolver.
type Resolver struct {
	Schemas *SchemaRegistry

	// ColormapAttr names the attribute carrying a colormap and
	// ColorValuesAttr the attribute carrying the per-point values colored
	// through it. A resolved colormap without values is dropped.
	ColormapAttr    string
	ColorValuesAttr string
}

// NewResolver returns a resolver over the given schemas.
func NewResolver(schemas *SchemaRegistry) *Resolver {
	return &Resolver{
		Schemas:         schemas,
		ColormapAttr:    "colormap",
		ColorValuesAttr: "colorvalues",
	}
}

// Resolve produces the final attributes of one component of kind in the
// given phase. The requested attrs are intersected with the component's
// schema; a nil attrs requests the full schema. For each attribute the
// highest-precedence source wins:
//
//	1. params named "<component>_<attr>" (schema membership not required)
//	2. plain params in the schema and not claimed by another component
//	3. the group styles of gc
//	4. the theme layer of the plot kind ("<kind>." prefixed keys)
//	5. the base theme
//	6. the component's registered fallback computation
//
// A component unknown to the schema yields an empty map: components are
// optional per phase. An unsupported fallback operation is an error.
// Attributes no source defines are simply absent from the result.
func (r *Resolver) Resolve(kind, component string, attrs StringSet, phase Phase, gc *GroupContext, params *Params, theme *Theme) (Attrs, error) {
	declared, ok := r.Schemas.attrs(kind, phase, component)
	if !ok {
		return Attrs{}, nil
	}
	components := r.Schemas.Get(kind, phase)

	requested := declared
	if attrs != nil {
		requested = attrs.Intersect(declared)
	}

	res := Attrs{}

	// Component-prefixed parameters express explicit intent and always
	// win, even for attributes outside the schema.
	for _, key := range params.Keys() {
		if attr, ok := SplitComponent(key, component); ok {
			v, _ := params.Get(key)
			res[attr] = v
		}
	}

	for _, attr := range requested.Elements() {
		if _, done := res[attr]; done {
			continue
		}

		if v, ok := params.Get(attr); ok && !claimed(attr, component, components) {
			res[attr] = v
			continue
		}

		if v, ok := gc.style(attr); ok {
			res[attr] = v
			continue
		}

		if theme != nil {
			if v, ok := theme.lookup(kind+"."+attr, phase); ok {
				res[attr] = v
				continue
			}
			if v, ok := theme.lookup(attr, phase); ok {
				res[attr] = v
				continue
			}
		}

		fb, ok := r.Schemas.fallback(kind, phase, component, attr)
		if !ok {
			continue // No source, no value: the renderer's default applies.
		}
		v, ok, err := fb.apply(component, gc)
		if err != nil {
			return nil, fmt.Errorf("style: %s/%s attribute %s: %v", kind, component, attr, err)
		}
		if ok {
			res[attr] = v
		}
	}

	r.cleanColormap(res)

	return res, nil
}

// ResolvePhase resolves every component kind declares for phase with its
// full schema. The result maps component name to its resolved attributes
// and feeds Dispatcher.Dispatch directly.
func (r *Resolver) ResolvePhase(kind string, phase Phase, gc *GroupContext, params *Params, theme *Theme) (map[string]Attrs, error) {
	res := make(map[string]Attrs)
	for _, component := range r.Schemas.Components(kind, phase) {
		a, err := r.Resolve(kind, component, nil, phase, gc, params, theme)
		if err != nil {
			return nil, err
		}
		res[component] = a
	}
	return res, nil
}

// cleanColormap drops a colormap which nothing in res consumes: the
// rendering backend rejects a colormap without values to color by.
func (r *Resolver) cleanColormap(res Attrs) {
	if _, ok := res[r.ColormapAttr]; !ok {
		return
	}
	if _, ok := res[r.ColorValuesAttr]; ok {
		return
	}
	delete(res, r.ColormapAttr)
}

// apply executes the fallback computation for component.
func (fb Fallback) apply(component string, gc *GroupContext) (interface{}, bool, error) {
	switch fb.Op {
	case SizeScale:
		f, ok := gc.sizeFactor()
		if !ok {
			return nil, false, nil
		}
		switch base := fb.Base.(type) {
		case float64:
			return base * f, true, nil
		case int:
			return float64(base) * f, true, nil
		case vg.Length:
			return vg.Length(float64(base) * f), true, nil
		}
		return nil, false, fmt.Errorf("%s base of type %T is not a size", SizeScale, fb.Base)
	case ConditionalDefault:
		if v, ok := fb.Choice[component]; ok {
			return v, v != nil, nil
		}
		return fb.Default, fb.Default != nil, nil
	}
	return nil, false, fmt.Errorf("unsupported fallback operation %q", fb.Op)
}
