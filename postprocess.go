package style

import "sort"

// ----------------------------------------------------------------------------
// Post-processing

// A PostProcess decorates one live visual object with its resolved
// post-processing attributes. The handle is whatever the renderer produced
// for the component, typically a *plot.Plot or a plotter.
type PostProcess func(handle interface{}, attrs Attrs) error

// A Dispatcher routes resolved post-processing styles to the decoration
// callback registered per (plot kind, component). Registration happens at
// kind definition time.
type Dispatcher struct {
	callbacks map[kindComponent]PostProcess
}

type kindComponent struct {
	kind      string
	component string
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{callbacks: make(map[kindComponent]PostProcess)}
}

// Register sets the callback for component of kind, replacing any previous
// one.
func (d *Dispatcher) Register(kind, component string, fn PostProcess) {
	d.callbacks[kindComponent{kind, component}] = fn
}

// Dispatch invokes the registered callback for every component present in
// both styles and handles. A component without a callback needs no
// decoration; a component without a handle was not produced by this plot.
// Both are skipped silently. The first callback error stops the dispatch.
func (d *Dispatcher) Dispatch(kind string, handles map[string]interface{}, styles map[string]Attrs) error {
	components := make([]string, 0, len(styles))
	for c := range styles {
		components = append(components, c)
	}
	sort.Strings(components)

	for _, component := range components {
		fn, ok := d.callbacks[kindComponent{kind, component}]
		if !ok {
			continue
		}
		h, ok := handles[component]
		if !ok {
			continue
		}
		if err := fn(h, styles[component]); err != nil {
			return err
		}
	}
	return nil
}
