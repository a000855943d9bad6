package style

// ----------------------------------------------------------------------------
// Channels

// A Channel is one of the visual channels a data group can be mapped
// through: its category determines a color, a glyph shape, a size or a
// dash pattern.
type Channel int

const (
	NoChannel Channel = iota
	HueChannel
	MarkerChannel
	SizeChannel
	StyleChannel
	numChannels
)

// String returns the name of channel c.
func (c Channel) String() string {
	if c < 0 || c >= numChannels {
		panic(c)
	}
	return []string{"none", "hue", "marker", "size", "style"}[int(c)]
}

// ----------------------------------------------------------------------------
// GroupContext

// A GroupContext is the channel assignment of the data group currently
// being drawn, together with the concrete group styles derived from it.
// It is built immediately before drawing one group's geometry and replaced
// before the next group; the resolver consumes it as the
// highest-but-one precedence source.
type GroupContext struct {
	// Values holds the category or continuous value assigned per channel,
	// e.g. HueChannel → "setosa" or SizeChannel → 12.0.
	Values map[Channel]interface{}

	// Styles holds the concrete attributes derived from Values by the
	// cycling subsystem, e.g. "color" → color.RGBA{...}.
	Styles Attrs

	// SizeFactor is the group's size multiplier consumed by the
	// SizeScale fallback. Zero means no multiplier is active.
	SizeFactor float64
}

// NewGroupContext returns an empty context with no active channels.
func NewGroupContext() *GroupContext {
	return &GroupContext{
		Values: make(map[Channel]interface{}),
		Styles: Attrs{},
	}
}

// Value returns the value assigned to channel c, or nil.
func (g *GroupContext) Value(c Channel) interface{} {
	if g == nil {
		return nil
	}
	return g.Values[c]
}

// style returns the derived group style for attr.
func (g *GroupContext) style(attr string) (interface{}, bool) {
	if g == nil {
		return nil, false
	}
	v, ok := g.Styles[attr]
	return v, ok
}

// sizeFactor returns the active size multiplier and whether there is one.
func (g *GroupContext) sizeFactor() (float64, bool) {
	if g == nil || g.SizeFactor == 0 {
		return 0, false
	}
	return g.SizeFactor, true
}
