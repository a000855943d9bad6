package style

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Typed accessors for resolved attribute values. Attribute maps hold
// whatever the caller or theme put in; the accessors do the type checks a
// decoration callback would otherwise repeat. All of them report false
// for a missing key or a value of the wrong type.

// Color returns the color value of key.
func (a Attrs) Color(key string) (color.Color, bool) {
	c, ok := a[key].(color.Color)
	return c, ok
}

// Length returns the length value of key. Plain float64 and int values
// are converted.
func (a Attrs) Length(key string) (vg.Length, bool) {
	switch v := a[key].(type) {
	case vg.Length:
		return v, true
	case float64:
		return vg.Length(v), true
	case int:
		return vg.Length(v), true
	}
	return 0, false
}

// Float returns the float value of key. Int and vg.Length values are
// converted.
func (a Attrs) Float(key string) (float64, bool) {
	switch v := a[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case vg.Length:
		return float64(v), true
	}
	return 0, false
}

// Text returns the string value of key.
func (a Attrs) Text(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Floats returns the []float64 value of key.
func (a Attrs) Floats(key string) ([]float64, bool) {
	f, ok := a[key].([]float64)
	return f, ok
}
