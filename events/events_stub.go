//go:build !js || !wasm

package events

// AdaptChangeEvent returns the handler unchanged in non-WASM builds.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(ChangeEventArgs) {
	return handler
}

// AdaptNoArgEvent returns the handler unchanged in non-WASM builds.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}
