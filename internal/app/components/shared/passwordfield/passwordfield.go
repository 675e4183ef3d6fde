package passwordfield

import (
	"github.com/vcrobe/passwordcheck/events"
	"github.com/vcrobe/passwordcheck/passwordcheck"
	"github.com/vcrobe/passwordcheck/runtime"
	"github.com/vcrobe/passwordcheck/vdom"
)

// PasswordField renders a password input with an eye icon that switches
// the input between masked and revealed mode.
type PasswordField struct {
	runtime.ComponentBase

	// --- PROPS ---

	// ID is the input element's id.
	ID string

	// ToggleID is the icon element's id.
	ToggleID string

	Label       string
	Placeholder string

	// Value is the current text, owned by the parent.
	Value string

	// OnInput is called with the new value on every input event.
	OnInput func(value string)

	// --- INTERNAL STATE ---

	// Visibility survives parent re-renders; ApplyProps never touches it.
	Visibility passwordcheck.Visibility
}

// ApplyProps copies the props of a freshly constructed field onto this
// live instance.
func (c *PasswordField) ApplyProps(source runtime.Component) {
	src, ok := source.(*PasswordField)
	if !ok {
		return
	}
	c.ID = src.ID
	c.ToggleID = src.ToggleID
	c.Label = src.Label
	c.Placeholder = src.Placeholder
	c.Value = src.Value
	c.OnInput = src.OnInput
}

// Toggle is bound to the icon's click event.
func (c *PasswordField) Toggle() {
	c.Visibility = c.Visibility.Toggle()
	c.StateHasChanged()
}

// HandleInput is bound to the input's input event.
func (c *PasswordField) HandleInput(e events.ChangeEventArgs) {
	if c.OnInput != nil {
		c.OnInput(e.Value)
	}
}

// Render builds the label, the input and the eye icon.
func (c *PasswordField) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "password-field"},
		vdom.Label(c.Label, c.ID),
		vdom.Div(map[string]any{"class": "relative"},
			vdom.Input(c.Visibility.InputType(), c.Value, map[string]any{
				"id":           c.ID,
				"name":         c.ID,
				"placeholder":  c.Placeholder,
				"autocomplete": "new-password",
				"onInput":      events.AdaptChangeEvent(c.HandleInput),
			}),
			vdom.Icon(map[string]any{
				"id":         c.ToggleID,
				"class":      vdom.Classes("fa-solid", c.Visibility.IconClass(), "toggle-visibility"),
				"role":       "button",
				"aria-label": "Toggle password visibility",
				"onClick":    events.AdaptNoArgEvent(c.Toggle),
			}),
		),
	)
}
