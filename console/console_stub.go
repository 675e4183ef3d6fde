//go:build !js || !wasm

package console

// Stub file for non-WASM builds so components and the runtime compile in
// native tests. The real implementation is in console.go.

// Log is a no-op in non-WASM builds.
func Log(args ...any) {}

// Warn is a no-op in non-WASM builds.
func Warn(args ...any) {}

// Error is a no-op in non-WASM builds.
func Error(args ...any) {}
