package style

import (
	"sort"
	"strings"
)

// ----------------------------------------------------------------------------
// String Set

// StringSet is a set of attribute names.
type StringSet map[string]struct{}

// NewStringSet returns an empty set.
func NewStringSet() StringSet {
	return make(StringSet)
}

// NewStringSetFrom returns a set containing the elements of s.
func NewStringSetFrom(s ...string) StringSet {
	set := make(StringSet, len(s))
	for _, x := range s {
		set[x] = struct{}{}
	}
	return set
}

func (s StringSet) String() string {
	return "[" + strings.Join(s.Elements(), " ") + "]"
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Del removes x from s.
func (s StringSet) Del(x string) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s StringSet) Join(t StringSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

// Intersect returns the intersection of s and t.
func (s StringSet) Intersect(t StringSet) StringSet {
	intersection := NewStringSet()
	for x := range s {
		if t.Contains(x) {
			intersection.Add(x)
		}
	}
	return intersection
}

// Remove removes all elements of t from s. (Set difference.)
func (s StringSet) Remove(t StringSet) {
	for x := range t {
		delete(s, x)
	}
}

// Equals compares s to a slice t.
func (s StringSet) Equals(t []string) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of s.
func (s StringSet) Copy() StringSet {
	c := make(StringSet, len(s))
	for x := range s {
		c[x] = struct{}{}
	}
	return c
}

// Elements returns the elements of s in sorted order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
