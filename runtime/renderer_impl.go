//go:build js && wasm

package runtime

import (
	"github.com/vcrobe/passwordcheck/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles the rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	pending          bool
}

// NewRenderer creates a new runtime renderer that mounts under the element
// matching mountID (a CSS selector such as "#app").
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mountID:     mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot runs the render cycle for the root component and applies the
// result to the DOM. A ReRender requested while a cycle is running is
// coalesced into one extra cycle.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	if r.rendering {
		r.pending = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		r.renderOnce()
		if !r.pending {
			return
		}
	}
}

func (r *RendererImpl) renderOnce() {
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)
	if !r.initialized[rootKey] {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	newVDOM := r.currentComponent.Render(r)

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance previously
// rendered under the same key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents forgets children that were not rendered in this cycle.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key := range r.instances {
		if !r.activeKeys[key] {
			delete(r.instances, key)
			delete(r.initialized, key)
		}
	}
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
