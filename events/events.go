//go:build js && wasm

package events

import "syscall/js"

// AdaptChangeEvent wraps a handler for input/change events, reading
// event.target.value.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(js.Value) {
	return func(e js.Value) {
		target := e.Get("target")
		value := ""
		if target.Truthy() {
			value = target.Get("value").String()
		}
		handler(ChangeEventArgs{Value: value})
	}
}

// AdaptNoArgEvent wraps a handler that ignores the event object.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}
