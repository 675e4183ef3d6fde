//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/passwordcheck/console"
)

// supportedTags lists the elements createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "form": true, "p": true, "span": true, "label": true,
	"input": true, "button": true, "i": true, "h1": true, "h2": true,
}

// listener records an attached DOM listener so it can be detached and released.
type listener struct {
	el   js.Value
	name string
	fn   js.Func
}

// releaseCallbacks detaches and releases all listeners stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			l.el.Call("removeEventListener", l.name, l.fn)
			l.fn.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined()
	}
	return mount
}

// Clear removes everything under the mount element and releases the
// listeners of the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// applyAttrOps writes attribute operations to a DOM element.
func applyAttrOps(el js.Value, ops []AttrOp) {
	for _, op := range ops {
		if op.Remove {
			el.Call("removeAttribute", op.Key)
			continue
		}
		el.Call("setAttribute", op.Key, op.Value)
	}
}

// attachEventListeners attaches every "on*" attribute holding a
// func(js.Value) as a DOM listener: "onClick" -> "click", "onInput" -> "input".
func attachEventListeners(el js.Value, vnode *VNode) {
	for key, value := range vnode.Attributes {
		if !IsEventKey(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			console.Warn("Ignoring event attribute with unsupported handler type:", key)
			continue
		}

		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(listener{el: el, name: eventName, fn: cb})
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	applyAttrOps(el, DiffAttributes(nil, n.Attributes))
	attachEventListeners(el, n)

	switch {
	case n.Tag == "input":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
	case len(n.Children) > 0:
		for _, child := range n.Children {
			childEl := createElement(child)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	case n.Content != "":
		el.Set("textContent", n.Content)
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := mountElement(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstElementChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	applyAttrOps(domElement, DiffAttributes(oldVNode.Attributes, newVNode.Attributes))

	// Handlers are closures over the freshly rendered component, so they
	// are always re-bound.
	releaseCallbacks(oldVNode)
	attachEventListeners(domElement, newVNode)

	if newVNode.Tag == "input" {
		// Never overwrite what the user is typing.
		focused := domElement.Call("matches", ":focus").Bool()
		if !focused && domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	}

	// textContent wipes child nodes, so only touch it on leaf elements.
	if len(newVNode.Children) == 0 && len(oldVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
	if len(newVNode.Children) == 0 && newVNode.Content != "" {
		domElement.Set("textContent", newVNode.Content)
	}
}

// patchChildren updates the element children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	domChildren := domElement.Get("children")

	for i := 0; i < min(oldLen, newLen); i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
