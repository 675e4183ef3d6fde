package runtime

// Initializer is implemented by components that need setup before their
// first render. OnInit is called exactly once per instance.
type Initializer interface {
	OnInit()
}

// PropUpdater is implemented by child components that keep internal state
// across parent re-renders. When a child with the same key is rendered
// again, the runtime keeps the existing instance and calls ApplyProps with
// the freshly constructed one so only the props are copied over.
type PropUpdater interface {
	ApplyProps(source Component)
}
