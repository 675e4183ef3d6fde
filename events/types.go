// Package events adapts DOM events to plain Go handlers.
//
// In WASM builds the adapters return func(js.Value) values that the vdom
// renderer attaches with addEventListener. In native builds they return the
// handler unchanged, so tests can dispatch an event by calling the "on*"
// attribute of a rendered node directly.
package events

// ChangeEventArgs carries the current value of the element that fired an
// input or change event.
type ChangeEventArgs struct {
	Value string
}
