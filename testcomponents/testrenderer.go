// Package testcomponents provides an in-memory renderer for exercising
// components in native tests, without a browser or WASM.
package testcomponents

import (
	"github.com/vcrobe/passwordcheck/runtime"
	"github.com/vcrobe/passwordcheck/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Child instances are kept by key and receive new props through
// runtime.PropUpdater, the same way the WASM renderer treats them.
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	children    map[string]runtime.Component
	initialized map[runtime.Component]bool
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component:   comp,
		children:    make(map[string]runtime.Component),
		initialized: make(map[runtime.Component]bool),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.initOnce(r.component)
	r.renders++
	r.currentVDOM = r.component.Render(r)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount returns how many times the root component has been rendered.
func (r *TestRenderer) RenderCount() int {
	return r.renders
}

// Child returns the live child instance rendered under key, or nil.
func (r *TestRenderer) Child(key string) runtime.Component {
	return r.children[key]
}

// RenderChild renders a child, reusing the instance stored under key.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance, ok := r.children[key]
	if !ok {
		instance = child
		r.children[key] = instance
	} else if updater, ok := instance.(runtime.PropUpdater); ok {
		updater.ApplyProps(child)
	}

	instance.SetRenderer(r)
	r.initOnce(instance)
	return instance.Render(r)
}

func (r *TestRenderer) initOnce(c runtime.Component) {
	if r.initialized[c] {
		return
	}
	r.initialized[c] = true
	if initializer, ok := c.(runtime.Initializer); ok {
		initializer.OnInit()
	}
}
