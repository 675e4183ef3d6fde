package runtime

import "github.com/vcrobe/passwordcheck/vdom"

// Renderer defines the runtime operations components rely on.
// Both the WASM RendererImpl and the in-memory test renderer implement it.
type Renderer interface {
	// RenderChild renders a child component. The key identifies the child
	// instance across renders so its internal state is preserved.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
