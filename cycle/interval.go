package cycle

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval. Both
// edges of the interval may be NaN indicating this edge is not yet
// determined.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns an interval with both edges unset.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Equal reports whether i and j agree, treating NaN edges as equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// linTrans maps x linearly from the interval from to the interval to.
func linTrans(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}

// sizeTrans maps x from the data interval from to a display size in to
// such that the area of the drawn mark grows linearly with x.
// (Ggplot's scale_size.)
func sizeTrans(from, to Interval, x float64) float64 {
	area := Interval{to.Min * to.Min, to.Max * to.Max}
	return math.Sqrt(linTrans(from, area, x))
}
