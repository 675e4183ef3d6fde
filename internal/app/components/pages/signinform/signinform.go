// Package signinform implements the sign-up form: the submit button is
// enabled only while both password fields hold the same non-empty value.
package signinform

import (
	"github.com/vcrobe/passwordcheck/internal/app/components/shared/passwordfield"
	"github.com/vcrobe/passwordcheck/passwordcheck"
	"github.com/vcrobe/passwordcheck/runtime"
	"github.com/vcrobe/passwordcheck/vdom"
)

// Element ids rendered by the form. Page scripts and styles may rely on them.
const (
	PasswordID              = "password"
	ConfirmPasswordID       = "confirmPassword"
	SignInButtonID          = "signInButton"
	TogglePasswordID        = "togglePassword"
	ToggleConfirmPasswordID = "toggleConfirmPassword"
	PasswordErrorID         = "passwordError"
)

// HiddenClass is added to the error indicator while it is not shown.
const HiddenClass = "hidden"

// FormMethod is the submission method of the form.
const FormMethod = "post"

const mismatchMessage = "Passwords do not match."

// SignInForm is the root component of the sign-up page.
type SignInForm struct {
	runtime.ComponentBase

	Password        string
	ConfirmPassword string

	State passwordcheck.FormState

	// OmitErrorIndicator renders the form without the mismatch message.
	// Button behavior is the same either way.
	OmitErrorIndicator bool
}

// OnInit sets the state shown before the user types anything.
func (c *SignInForm) OnInit() {
	c.State = passwordcheck.InitialState()
}

// HandlePasswordInput is bound to the password field's input event.
func (c *SignInForm) HandlePasswordInput(value string) {
	c.Password = value
	c.validate()
}

// HandleConfirmInput is bound to the confirm field's input event.
func (c *SignInForm) HandleConfirmInput(value string) {
	c.ConfirmPassword = value
	c.validate()
}

// validate recomputes the form state from both values and re-renders.
func (c *SignInForm) validate() {
	c.State = passwordcheck.Evaluate(c.Password, c.ConfirmPassword)
	c.StateHasChanged()
}

// Render builds the form. The mismatch message carries both the hidden
// class and the hidden attribute, so it stays hidden with or without the
// page's stylesheet.
func (c *SignInForm) Render(r runtime.Renderer) *vdom.VNode {
	var errorNode *vdom.VNode
	if !c.OmitErrorIndicator {
		hidden := ""
		if !c.State.ErrorVisible {
			hidden = HiddenClass
		}
		errorNode = vdom.Paragraph(mismatchMessage, map[string]any{
			"id":     PasswordErrorID,
			"class":  vdom.Classes("text-red-600", "text-sm", hidden),
			"hidden": !c.State.ErrorVisible,
			"role":   "alert",
		})
	}

	// Posting keeps the passwords out of the URL.
	return vdom.Form(map[string]any{"class": "signup-form", "method": FormMethod, "novalidate": true},
		r.RenderChild(PasswordID, &passwordfield.PasswordField{
			ID:          PasswordID,
			ToggleID:    TogglePasswordID,
			Label:       "Password",
			Placeholder: "Enter your password",
			Value:       c.Password,
			OnInput:     c.HandlePasswordInput,
		}),
		r.RenderChild(ConfirmPasswordID, &passwordfield.PasswordField{
			ID:          ConfirmPasswordID,
			ToggleID:    ToggleConfirmPasswordID,
			Label:       "Confirm Password",
			Placeholder: "Re-enter your password",
			Value:       c.ConfirmPassword,
			OnInput:     c.HandleConfirmInput,
		}),
		errorNode,
		vdom.Button("Sign Up", map[string]any{
			"id":       SignInButtonID,
			"type":     "submit",
			"disabled": !c.State.SubmitEnabled,
		}),
	)
}
