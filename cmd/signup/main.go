//go:build js && wasm

// Command signup is the WASM entry point for the sign-up page. It mounts
// the form on the element the host page names in its body's data-mount
// attribute, or on #app when there is none.
package main

import (
	"syscall/js"

	"github.com/vcrobe/passwordcheck/console"
	"github.com/vcrobe/passwordcheck/internal/app/components/pages/signinform"
	"github.com/vcrobe/passwordcheck/runtime"
	"github.com/vcrobe/passwordcheck/vdom"
)

// mountID reads the mount element id from the host page.
func mountID() string {
	body := js.Global().Get("document").Get("body")
	if !body.Truthy() {
		return ""
	}
	id := body.Call("getAttribute", vdom.MountAttribute)
	if id.IsNull() || id.IsUndefined() {
		return ""
	}
	return id.String()
}

func main() {
	// The host page starts the Go program from its load handler, so the
	// mount element already exists here.
	selector := vdom.MountSelector(mountID())

	renderer := runtime.NewRenderer(selector)
	renderer.SetCurrentComponent(&signinform.SignInForm{})
	renderer.RenderRoot()

	console.Log("sign-up form mounted on", selector)

	// Keep the Go program running
	select {}
}
