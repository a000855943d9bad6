package style

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Legend entries

// A LegendEntry links one drawn visual to its label, the axis (panel) it
// was drawn on and the channel that produced its styling. NoChannel marks
// entries outside any channel mapping.
type LegendEntry struct {
	Thumb   plot.Thumbnailer
	Label   string
	Axis    string
	Channel Channel
}

// ----------------------------------------------------------------------------
// Deduplication

// A DedupStrategy selects how collected entries collapse into legends.
type DedupStrategy int

const (
	// DedupPerAxis collapses identical (label, channel) pairs on the same
	// axis; every axis gets its own legend.
	DedupPerAxis DedupStrategy = iota

	// DedupPerChannel collapses identical (label, channel) pairs across
	// all axes and produces one figure-level legend per channel.
	DedupPerChannel

	// DedupFlat collapses on the label alone and produces a single
	// figure-level legend.
	DedupFlat
)

// String returns the name of strategy s.
func (s DedupStrategy) String() string {
	switch s {
	case DedupPerAxis:
		return "per-axis"
	case DedupPerChannel:
		return "per-channel"
	case DedupFlat:
		return "flat"
	}
	panic(s)
}

// ----------------------------------------------------------------------------
// Placement

// Placement configures where finalized legends go. Every numeric field
// takes part in the final coordinate computation.
type Placement struct {
	// Position is one of "right", "left", "top", "bottom" or "inside".
	// Empty means "right".
	Position string

	// XOffs and YOffs shift the computed rectangle manually.
	XOffs, YOffs vg.Length

	// Inset is the distance kept from the canvas edge.
	Inset vg.Length

	// Cols is the number of columns of the legend grid when more than one
	// legend is placed. Values below 1 mean a single column.
	Cols int
}

func (p Placement) validate() error {
	switch p.Position {
	case "", "right", "left", "top", "bottom", "inside":
		return nil
	}
	return fmt.Errorf("style: unknown legend position %q", p.Position)
}

// ----------------------------------------------------------------------------
// Legend style

// LegendStyle controls how a legend is drawn.
type LegendStyle struct {
	Title draw.TextStyle
	Label draw.TextStyle

	// ThumbnailSize is the side length of the square thumbnail canvas.
	ThumbnailSize vg.Length

	// Pad separates thumbnail, label and neighbouring grid cells.
	Pad vg.Length
}

// DefaultLegendStyle mimics the legend appearance of ggplot2. The
// baseFontSize is the title font size, labels are a bit smaller.
func DefaultLegendStyle(baseFontSize vg.Length) LegendStyle {
	scale := func(f float64) vg.Length {
		return vg.Length(math.Round(f * float64(baseFontSize)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", baseFontSize)
	if err != nil {
		panic(err)
	}
	labelFont, err := vg.MakeFont("Helvetica", scale(1/1.2))
	if err != nil {
		panic(err)
	}

	ls := LegendStyle{}
	ls.Title.Color = color.Black
	ls.Title.Font = titleFont
	ls.Title.XAlign = draw.XLeft
	ls.Title.YAlign = draw.YTop

	ls.Label.Color = color.Black
	ls.Label.Font = labelFont
	ls.Label.XAlign = draw.XLeft
	ls.Label.YAlign = -0.3 // draw.YCenter

	ls.ThumbnailSize = vg.Length(20)
	ls.Pad = vg.Length(4)

	return ls
}

// ----------------------------------------------------------------------------
// Legend registry

type legendState int

const (
	collecting legendState = iota
	finalizing
	placed
)

// A LegendRegistry collects legend entries while the plots of one figure
// are drawn and turns them into placed legends at finalization. It lives
// through exactly one figure: construct per figure, Add during drawing,
// Finalize once when the figure is done. Afterwards the registry is inert.
//
// Entries must be added in draw order and Finalize must not be called
// before all draw calls completed; the caller owns this sequencing.
type LegendRegistry struct {
	kinds   *KindRegistry
	state   legendState
	entries []LegendEntry
}

// NewLegendRegistry returns a collecting registry consulting kinds for
// capability flags.
func NewLegendRegistry(kinds *KindRegistry) *LegendRegistry {
	return &LegendRegistry{kinds: kinds}
}

// Add records one legend entry for a plot of the given kind. Kinds which
// do not participate in the legend system are an explicit no-op, as is any
// Add after the registry was placed. An unregistered kind is skipped with
// a warning.
func (r *LegendRegistry) Add(kind string, thumb plot.Thumbnailer, label, axis string, channel Channel) {
	if r.state != collecting {
		return
	}
	k, ok := r.kinds.Lookup(kind)
	if !ok {
		Warning.Printf("legend entry %q for unregistered plot kind %q dropped", label, kind)
		return
	}
	if !k.Legend {
		return
	}
	r.entries = append(r.entries, LegendEntry{
		Thumb:   thumb,
		Label:   label,
		Axis:    axis,
		Channel: channel,
	})
}

// Len returns the number of collected entries.
func (r *LegendRegistry) Len() int { return len(r.entries) }

// Finalize deduplicates the collected entries according to strategy,
// builds the legends and transfers the registry into its terminal placed
// state. Entry and legend order follow the first occurrence in draw order.
// Calling Finalize a second time is an error.
func (r *LegendRegistry) Finalize(strategy DedupStrategy, place Placement, sty LegendStyle) ([]*Legend, error) {
	if r.state != collecting {
		return nil, fmt.Errorf("style: legend registry finalized twice")
	}
	if err := place.validate(); err != nil {
		return nil, err
	}
	r.state = finalizing

	var legends []*Legend
	byGroup := make(map[string]*Legend) // axis or channel -> legend
	seen := make(map[legendKey]bool)

	for _, e := range r.entries {
		key := dedupKey(strategy, e)
		if seen[key] {
			continue
		}
		seen[key] = true

		group, title := "", ""
		switch strategy {
		case DedupPerAxis:
			group = e.Axis
		case DedupPerChannel:
			group = e.Channel.String()
			title = e.Channel.String()
		case DedupFlat:
			// One legend for the whole figure.
		}

		l, ok := byGroup[group]
		if !ok {
			l = &Legend{
				Title:     title,
				Axis:      e.Axis,
				Placement: place,
				Style:     sty,
				index:     len(legends),
			}
			if strategy != DedupPerAxis {
				l.Axis = ""
			}
			byGroup[group] = l
			legends = append(legends, l)
		}
		l.Entries = append(l.Entries, e)
	}

	// Uniform grid cells so that multiple legends do not overlap.
	var cellW, cellH vg.Length
	for _, l := range legends {
		w, h := l.size()
		if w > cellW {
			cellW = w
		}
		if h > cellH {
			cellH = h
		}
	}
	for _, l := range legends {
		l.cellW, l.cellH = cellW, cellH
	}

	r.state = placed
	r.entries = nil

	return legends, nil
}

type legendKey struct {
	axis    string
	label   string
	channel Channel
}

func dedupKey(strategy DedupStrategy, e LegendEntry) legendKey {
	switch strategy {
	case DedupPerAxis:
		return legendKey{e.Axis, e.Label, e.Channel}
	case DedupPerChannel:
		return legendKey{"", e.Label, e.Channel}
	case DedupFlat:
		return legendKey{"", e.Label, NoChannel}
	}
	panic(strategy)
}

// ----------------------------------------------------------------------------
// Legend

// A Legend is one placed legend artifact: the deduplicated entries of one
// axis, one channel or the whole figure, plus everything needed to draw
// it on a canvas.
type Legend struct {
	// Title of the legend, the channel name for per-channel legends.
	Title string

	// Axis identifies the originating axis for per-axis legends.
	Axis string

	Entries []LegendEntry

	Placement Placement
	Style     LegendStyle

	index        int
	cellW, cellH vg.Length
}

// size returns the natural width and height of l.
func (l *Legend) size() (w, h vg.Length) {
	rowH := l.Style.ThumbnailSize + l.Style.Pad
	for _, e := range l.Entries {
		lw := l.Style.ThumbnailSize + l.Style.Pad + l.Style.Label.Width(e.Label)
		if lw > w {
			w = lw
		}
		h += rowH
	}
	if l.Title != "" {
		if tw := l.Style.Title.Width(l.Title); tw > w {
			w = tw
		}
		h += l.Style.Title.Height(l.Title) + l.Style.Pad
	}
	return w, h
}

// Rect computes the rectangle of l inside c. The grid position of the
// legend, the inset and the manual XOffs/YOffs overrides all enter the
// final coordinates.
func (l *Legend) Rect(c draw.Canvas) vg.Rectangle {
	w, h := l.size()

	var min vg.Point
	switch l.Placement.Position {
	case "left":
		min = vg.Point{X: c.Min.X + l.Placement.Inset, Y: c.Max.Y - h - l.Placement.Inset}
	case "top":
		min = vg.Point{X: c.Min.X + (c.Max.X-c.Min.X-w)/2, Y: c.Max.Y - h - l.Placement.Inset}
	case "bottom":
		min = vg.Point{X: c.Min.X + (c.Max.X-c.Min.X-w)/2, Y: c.Min.Y + l.Placement.Inset}
	case "inside":
		min = vg.Point{X: c.Max.X - w - l.Placement.Inset, Y: c.Max.Y - h - l.Placement.Inset}
	default: // "right"
		min = vg.Point{X: c.Max.X - w - l.Placement.Inset, Y: c.Max.Y - h - l.Placement.Inset}
	}

	cols := l.Placement.Cols
	if cols < 1 {
		cols = 1
	}
	row, col := l.index/cols, l.index%cols
	min.X += vg.Length(col) * (l.cellW + l.Style.Pad)
	min.Y -= vg.Length(row) * (l.cellH + l.Style.Pad)

	min.X += l.Placement.XOffs
	min.Y += l.Placement.YOffs

	return vg.Rectangle{
		Min: min,
		Max: vg.Point{X: min.X + w, Y: min.Y + h},
	}
}

// Draw renders l onto c.
func (l *Legend) Draw(c draw.Canvas) {
	rect := l.Rect(c)
	y := rect.Max.Y

	if l.Title != "" {
		c.FillText(l.Style.Title, vg.Point{X: rect.Min.X, Y: y}, l.Title)
		y -= l.Style.Title.Height(l.Title) + l.Style.Pad
	}

	thumb := l.Style.ThumbnailSize
	for _, e := range l.Entries {
		y -= thumb
		if e.Thumb != nil {
			sub := draw.Canvas{
				Canvas: c.Canvas,
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: rect.Min.X, Y: y},
					Max: vg.Point{X: rect.Min.X + thumb, Y: y + thumb},
				},
			}
			e.Thumb.Thumbnail(&sub)
		}
		c.FillText(l.Style.Label,
			vg.Point{X: rect.Min.X + thumb + l.Style.Pad, Y: y + thumb/2},
			e.Label)
		y -= l.Style.Pad
	}
}
