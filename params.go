package style

import "strings"

// ----------------------------------------------------------------------------
// Params

// Params is the caller's parameter bag: an ordered mapping from parameter
// name to value. Iteration follows insertion order so that resolution is
// reproducible; setting an existing key updates the value in place.
type Params struct {
	keys []string
	vals map[string]interface{}
}

// NewParams returns an empty parameter bag.
func NewParams() *Params {
	return &Params{vals: make(map[string]interface{})}
}

// Set stores value under key and returns p for chaining.
func (p *Params) Set(key string, value interface{}) *Params {
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = value
	return p
}

// Get returns the value of key and whether it is present.
func (p *Params) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// ----------------------------------------------------------------------------
// Component prefixes

// SplitComponent splits a component-prefixed parameter name of the form
// "<component>_<attr>" and reports whether key carries the prefix of
// component. This is pure string splitting; whether attr is part of any
// schema does not matter here.
func SplitComponent(key, component string) (attr string, ok bool) {
	prefix := component + "_"
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return "", false
	}
	return key[len(prefix):], true
}

// claimed reports whether key is the prefixed form of some component in
// components other than component. Such parameters belong to the more
// specific component and are not treated as plain parameters elsewhere.
func claimed(key, component string, components map[string]StringSet) bool {
	for c := range components {
		if c == component {
			continue
		}
		if _, ok := SplitComponent(key, c); ok {
			return true
		}
	}
	return false
}
