// Package style resolves the drawing attributes of plot components and
// coordinates legends across the panels of a figure.
//
// It sits between a plotting frontend and gonum.org/v1/plot: the frontend
// asks for the final attribute set of a named component (the main marks,
// the title, the grid, a colorbar, ...) and package style merges the
// caller's parameters, the styles of the data group being drawn and a
// hierarchy of themes into one flat attribute map.
//
// Resolution
//
// Attributes are resolved per (plot kind, component, phase) with a strict
// precedence: component-prefixed parameters beat plain parameters beat
// group styles beat the plot kind's theme layer beats the base theme;
// attributes still unset may be produced by a small set of named fallback
// computations. A component only ever receives attributes its registered
// schema declares, except for component-prefixed parameters which express
// explicit intent and always win.
//
// Phases
//
// Styling happens in four phases: the main plot drawing, the
// post-processing (decoration) pass, axis level and figure level. Themes
// hold one attribute map per phase plus a general map and inherit from an
// optional parent theme.
//
// Legends
//
// As groups are drawn their legend entries accumulate in a LegendRegistry.
// At finalization the entries are deduplicated per axis, per channel or
// figure-flat and placed as one or more legends.
//
// The subpackage cycle derives concrete group styles (colors, glyph
// shapes, dash patterns, sizes) from visual channels; the subpackage decor
// provides stock post-processing callbacks for gonum/plot objects.
package style
