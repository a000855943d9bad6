package style

// ----------------------------------------------------------------------------
// Plot kinds

// A Kind declares a plot kind and its capabilities. The two flags are
// fixed when the kind is defined and are never overridden per instance:
// a kind which does not participate in the legend system never produces
// legend entries, and a kind which does not render grouped data is driven
// through the plain, ungrouped pathway. Both are explicit no-op pathways,
// not bypasses.
type Kind struct {
	Name string

	// Legend reports participation in the legend system.
	Legend bool

	// Grouped reports participation in grouped/positioned rendering.
	Grouped bool
}

// KindRegistry holds the capability declarations of all plot kinds.
type KindRegistry struct {
	kinds map[string]Kind
}

// NewKindRegistry returns an empty registry.
func NewKindRegistry() *KindRegistry {
	return &KindRegistry{kinds: make(map[string]Kind)}
}

// Register records k. Re-registration replaces the previous declaration.
func (r *KindRegistry) Register(k Kind) {
	r.kinds[k.Name] = k
}

// Lookup returns the declaration of name.
func (r *KindRegistry) Lookup(name string) (Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}
