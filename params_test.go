package style

import (
	"strconv"
	"testing"
)

var splitComponentTests = []struct {
	key, component string
	attr           string
	ok             bool
}{
	{"main_color", "main", "color", true},
	{"title_size", "title", "size", true},
	{"grid_major_color", "grid", "major_color", true},
	{"marker_size", "main", "", false}, // plain attribute, no main_ prefix
	{"main_", "main", "", false},       // empty attribute
	{"main", "main", "", false},
	{"mainly_color", "main", "", false},
}

func TestSplitComponent(t *testing.T) {
	for i, tc := range splitComponentTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			attr, ok := SplitComponent(tc.key, tc.component)
			if ok != tc.ok || attr != tc.attr {
				t.Errorf("SplitComponent(%q, %q) = %q, %t; want %q, %t",
					tc.key, tc.component, attr, ok, tc.attr, tc.ok)
			}
		})
	}
}

func TestParamsOrder(t *testing.T) {
	p := NewParams().
		Set("color", "red").
		Set("size", 5).
		Set("alpha", 0.5).
		Set("color", "blue") // update keeps position

	want := []string{"color", "size", "alpha"}
	got := p.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if v, ok := p.Get("color"); !ok || v != "blue" {
		t.Errorf("Get(color) = %v, %t; want blue", v, ok)
	}
	if p.Has("shape") {
		t.Errorf("Has(shape) = true")
	}
}

func TestClaimed(t *testing.T) {
	components := map[string]StringSet{
		"main": NewStringSetFrom("color", "size"),
		"grid": NewStringSetFrom("color"),
	}

	if !claimed("grid_color", "main", components) {
		t.Errorf("grid_color not claimed away from main")
	}
	if claimed("grid_color", "grid", components) {
		t.Errorf("grid_color claimed away from grid itself")
	}
	if claimed("marker_size", "main", components) {
		t.Errorf("marker_size claimed although marker is no component")
	}
}
