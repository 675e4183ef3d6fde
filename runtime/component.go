package runtime

import "github.com/vcrobe/passwordcheck/vdom"

// Component interface defines the structure for all components.
// It has no build tags, so it is available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the runtime to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}
