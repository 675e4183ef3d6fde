package vdom

import "strings"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node, including "on*" event handlers
	Children   []*VNode       // The child nodes
	Content    string         // Text content, or the value for input elements

	// eventCallbacks holds the js.Func values attached for this node so
	// they can be released when the node is patched away. Stored as any
	// because js.Func only exists in WASM builds.
	eventCallbacks []any
}

// NewVNode creates a new VNode. Nil children are dropped so conditional
// branches can pass nil for "not rendered".
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var kept []*VNode
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   kept,
		Content:    content,
	}
}

// AddEventCallback stores a callback for later release.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the stored callbacks.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all stored callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Form creates a <form> VNode.
func Form(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("form", attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Label creates a <label> VNode bound to the element with id forID.
func Label(text, forID string) *VNode {
	return NewVNode("label", map[string]any{"for": forID}, nil, text)
}

// Input returns a VNode for an <input> of the given type. value is kept in
// Content and written to the element's value property.
func Input(inputType, value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = inputType
	return NewVNode("input", attrs, nil, value)
}

// Button creates a <button> VNode with the given content and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Icon creates an <i> VNode, the usual carrier for icon font classes.
func Icon(attrs map[string]any) *VNode {
	return NewVNode("i", attrs, nil, "")
}

// Classes joins the non-empty class names with a single space.
func Classes(names ...string) string {
	kept := names[:0:0]
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

// FindByID returns the first node in the tree (depth-first) whose id
// attribute equals id, or nil.
func (v *VNode) FindByID(id string) *VNode {
	if v == nil {
		return nil
	}
	if got, _ := v.Attributes["id"].(string); got == id {
		return v
	}
	for _, c := range v.Children {
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// HasClass reports whether the node's class attribute contains name.
func (v *VNode) HasClass(name string) bool {
	if v == nil {
		return false
	}
	class, _ := v.Attributes["class"].(string)
	for _, c := range strings.Fields(class) {
		if c == name {
			return true
		}
	}
	return false
}

// BoolAttr returns a boolean attribute. Missing attributes are false.
func (v *VNode) BoolAttr(key string) bool {
	if v == nil {
		return false
	}
	b, _ := v.Attributes[key].(bool)
	return b
}

// StringAttr returns a string attribute, or "" when missing.
func (v *VNode) StringAttr(key string) string {
	if v == nil {
		return ""
	}
	s, _ := v.Attributes[key].(string)
	return s
}
