package style

import "sort"

// ----------------------------------------------------------------------------
// Component schemas

// A component schema bounds what the resolver will extract for a component:
// per plot kind and phase it maps component names like "main", "title" or
// "colorbar" to the set of attribute names the component recognizes.

type kindPhase struct {
	kind  string
	phase Phase
}

// SchemaRegistry holds the component schemas and fallback computations of
// all plot kinds. Registration happens once, at plot kind definition time,
// before any rendering; the registry is read-only afterwards.
type SchemaRegistry struct {
	components map[kindPhase]map[string]StringSet
	fallbacks  map[kindPhase]map[string]map[string]Fallback
}

// NewSchemaRegistry returns an empty registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{
		components: make(map[kindPhase]map[string]StringSet),
		fallbacks:  make(map[kindPhase]map[string]map[string]Fallback),
	}
}

// Register declares the attribute set of component for the given plot kind
// and phase. Registering the same triple again replaces the previous set:
// later, more specialized kind definitions deliberately overwrite the
// schemas they inherit.
func (r *SchemaRegistry) Register(kind string, phase Phase, component string, attrs ...string) {
	kp := kindPhase{kind, phase}
	if r.components[kp] == nil {
		r.components[kp] = make(map[string]StringSet)
	}
	r.components[kp][component] = NewStringSetFrom(attrs...)
}

// RegisterFallback attaches a fallback computation for attr of component.
// The fallback is consulted only for attributes absent from every other
// resolution source.
func (r *SchemaRegistry) RegisterFallback(kind string, phase Phase, component, attr string, fb Fallback) {
	kp := kindPhase{kind, phase}
	if r.fallbacks[kp] == nil {
		r.fallbacks[kp] = make(map[string]map[string]Fallback)
	}
	if r.fallbacks[kp][component] == nil {
		r.fallbacks[kp][component] = make(map[string]Fallback)
	}
	r.fallbacks[kp][component][attr] = fb
}

// Get returns the component→attribute-set mapping for (kind, phase). The
// returned map is the registry's own and must be treated as read-only.
// An unregistered (kind, phase) yields nil.
func (r *SchemaRegistry) Get(kind string, phase Phase) map[string]StringSet {
	return r.components[kindPhase{kind, phase}]
}

// Components returns the component names of (kind, phase) in sorted order.
func (r *SchemaRegistry) Components(kind string, phase Phase) []string {
	m := r.components[kindPhase{kind, phase}]
	names := make([]string, 0, len(m))
	for c := range m {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

func (r *SchemaRegistry) attrs(kind string, phase Phase, component string) (StringSet, bool) {
	set, ok := r.components[kindPhase{kind, phase}][component]
	return set, ok
}

func (r *SchemaRegistry) fallback(kind string, phase Phase, component, attr string) (Fallback, bool) {
	fb, ok := r.fallbacks[kindPhase{kind, phase}][component][attr]
	return fb, ok
}

// ----------------------------------------------------------------------------
// Fallback computations

// The closed set of fallback operations.
const (
	// SizeScale emits Base multiplied by the size factor of the active
	// group. Without an active factor nothing is emitted and the
	// renderer's own default applies.
	SizeScale = "size-scale"

	// ConditionalDefault emits Choice[component], or Default if the
	// component has no entry. A nil value emits nothing.
	ConditionalDefault = "conditional-default"
)

// A Fallback computes a value for an attribute which no resolution source
// defines. Op selects one of the operations above; an unsupported Op is an
// invalid configuration and fails resolution immediately.
type Fallback struct {
	Op string

	// Base is the unscaled value for SizeScale, a float64 or vg.Length.
	Base interface{}

	// Choice and Default parameterize ConditionalDefault.
	Choice  map[string]interface{}
	Default interface{}
}
