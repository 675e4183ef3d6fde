//go:build js && wasm

// Package console forwards log output to the browser's developer console.
package console

import (
	"syscall/js"
)

func Log(args ...any) {
	js.Global().Get("console").Call("log", args...)
}

func Warn(args ...any) {
	js.Global().Get("console").Call("warn", args...)
}

func Error(args ...any) {
	js.Global().Get("console").Call("error", args...)
}
