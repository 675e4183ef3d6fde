//go:build !wasm

package signinform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/passwordcheck/events"
	"github.com/vcrobe/passwordcheck/passwordcheck"
	"github.com/vcrobe/passwordcheck/testcomponents"
	"github.com/vcrobe/passwordcheck/vdom"
)

// mount renders the form and returns its renderer.
func mount(t *testing.T, form *SignInForm) *testcomponents.TestRenderer {
	t.Helper()
	renderer := testcomponents.NewTestRenderer(form)
	root := renderer.RenderRoot()
	require.NotNil(t, root)
	require.Equal(t, "form", root.Tag)
	return renderer
}

func element(t *testing.T, renderer *testcomponents.TestRenderer, id string) *vdom.VNode {
	t.Helper()
	n := renderer.GetCurrentVDOM().FindByID(id)
	require.NotNil(t, n, "element #%s not rendered", id)
	return n
}

// typeInto dispatches an input event on the field with the given id, the
// way the browser would after each keystroke.
func typeInto(t *testing.T, renderer *testcomponents.TestRenderer, id, value string) {
	t.Helper()
	handler, ok := element(t, renderer, id).Attributes["onInput"].(func(events.ChangeEventArgs))
	require.True(t, ok, "onInput handler missing on #%s", id)
	handler(events.ChangeEventArgs{Value: value})
}

func clickOn(t *testing.T, renderer *testcomponents.TestRenderer, id string) {
	t.Helper()
	handler, ok := element(t, renderer, id).Attributes["onClick"].(func())
	require.True(t, ok, "onClick handler missing on #%s", id)
	handler()
}

func submitDisabled(t *testing.T, renderer *testcomponents.TestRenderer) bool {
	t.Helper()
	return element(t, renderer, SignInButtonID).BoolAttr("disabled")
}

// errorShown reports whether the mismatch message is visible. The hidden
// class and the hidden attribute must always agree.
func errorShown(t *testing.T, renderer *testcomponents.TestRenderer) bool {
	t.Helper()
	n := element(t, renderer, PasswordErrorID)
	byClass := n.HasClass(HiddenClass)
	byAttr := n.BoolAttr("hidden")
	require.Equal(t, byClass, byAttr, "hidden class and hidden attribute disagree")
	return !byAttr
}

func TestSignInForm_RendersExpectedElements(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	for _, id := range []string{
		PasswordID, ConfirmPasswordID, SignInButtonID,
		TogglePasswordID, ToggleConfirmPasswordID, PasswordErrorID,
	} {
		element(t, renderer, id)
	}
}

func TestSignInForm_InitialState(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	assert.True(t, submitDisabled(t, renderer), "submit must start disabled")
	assert.False(t, errorShown(t, renderer), "error must not show before any input")
	assert.Equal(t, "password", element(t, renderer, PasswordID).StringAttr("type"))
	assert.Equal(t, "password", element(t, renderer, ConfirmPasswordID).StringAttr("type"))
}

func TestSignInForm_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		confirm      string
		wantDisabled bool
	}{
		{name: "confirm empty", password: "abc123", confirm: "", wantDisabled: true},
		{name: "values match", password: "abc123", confirm: "abc123", wantDisabled: false},
		{name: "both empty", password: "", confirm: "", wantDisabled: true},
		{name: "mismatch", password: "abc123", confirm: "abc124", wantDisabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := &SignInForm{}
			renderer := mount(t, form)

			typeInto(t, renderer, PasswordID, tt.password)
			typeInto(t, renderer, ConfirmPasswordID, tt.confirm)

			assert.Equal(t, tt.wantDisabled, submitDisabled(t, renderer))
			assert.Equal(t, tt.wantDisabled, errorShown(t, renderer),
				"error indicator must be shown exactly when submit is disabled")
			assert.Equal(t, tt.password, element(t, renderer, PasswordID).Content)
			assert.Equal(t, tt.confirm, element(t, renderer, ConfirmPasswordID).Content)
		})
	}
}

func TestSignInForm_RecomputesOnEveryInput(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	steps := []struct {
		id           string
		value        string
		wantDisabled bool
	}{
		{PasswordID, "s", true},
		{PasswordID, "se", true},
		{ConfirmPasswordID, "se", false},
		{PasswordID, "sec", true},
		{ConfirmPasswordID, "sec", false},
		{PasswordID, "", true},
		{ConfirmPasswordID, "", true},
	}

	for i, s := range steps {
		typeInto(t, renderer, s.id, s.value)
		assert.Equalf(t, s.wantDisabled, submitDisabled(t, renderer), "step %d (%s=%q)", i, s.id, s.value)
		assert.Equalf(t, s.wantDisabled, errorShown(t, renderer), "step %d (%s=%q)", i, s.id, s.value)
	}
}

func TestSignInForm_ToggleVisibility(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	clickOn(t, renderer, TogglePasswordID)
	assert.Equal(t, "text", element(t, renderer, PasswordID).StringAttr("type"))
	assert.True(t, element(t, renderer, TogglePasswordID).HasClass(passwordcheck.IconRevealed))

	clickOn(t, renderer, TogglePasswordID)
	assert.Equal(t, "password", element(t, renderer, PasswordID).StringAttr("type"))
	assert.True(t, element(t, renderer, TogglePasswordID).HasClass(passwordcheck.IconMasked))
}

func TestSignInForm_TogglesAreIndependent(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	clickOn(t, renderer, ToggleConfirmPasswordID)
	assert.Equal(t, "text", element(t, renderer, ConfirmPasswordID).StringAttr("type"))
	assert.Equal(t, "password", element(t, renderer, PasswordID).StringAttr("type"))
	assert.True(t, element(t, renderer, TogglePasswordID).HasClass(passwordcheck.IconMasked))

	clickOn(t, renderer, TogglePasswordID)
	assert.Equal(t, "text", element(t, renderer, PasswordID).StringAttr("type"))
	assert.Equal(t, "text", element(t, renderer, ConfirmPasswordID).StringAttr("type"))

	clickOn(t, renderer, ToggleConfirmPasswordID)
	assert.Equal(t, "password", element(t, renderer, ConfirmPasswordID).StringAttr("type"))
	assert.Equal(t, "text", element(t, renderer, PasswordID).StringAttr("type"))
}

func TestSignInForm_VisibilitySurvivesTyping(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	clickOn(t, renderer, TogglePasswordID)
	typeInto(t, renderer, PasswordID, "abc123")
	typeInto(t, renderer, ConfirmPasswordID, "abc123")

	assert.Equal(t, "text", element(t, renderer, PasswordID).StringAttr("type"))
	assert.Equal(t, "password", element(t, renderer, ConfirmPasswordID).StringAttr("type"))
	assert.False(t, submitDisabled(t, renderer))
}

func TestSignInForm_ToggleDoesNotValidate(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	clickOn(t, renderer, TogglePasswordID)

	assert.True(t, submitDisabled(t, renderer))
	assert.False(t, errorShown(t, renderer))
}

func TestSignInForm_WithoutErrorIndicator(t *testing.T) {
	renderer := mount(t, &SignInForm{OmitErrorIndicator: true})

	assert.Nil(t, renderer.GetCurrentVDOM().FindByID(PasswordErrorID))

	typeInto(t, renderer, PasswordID, "abc123")
	assert.True(t, submitDisabled(t, renderer))
	assert.Nil(t, renderer.GetCurrentVDOM().FindByID(PasswordErrorID))

	typeInto(t, renderer, ConfirmPasswordID, "abc123")
	assert.False(t, submitDisabled(t, renderer))
}

func TestSignInForm_ErrorHiddenAttribute(t *testing.T) {
	renderer := mount(t, &SignInForm{})
	assert.True(t, element(t, renderer, PasswordErrorID).BoolAttr("hidden"),
		"message must be hidden by attribute before any input")

	typeInto(t, renderer, PasswordID, "abc123")
	assert.False(t, element(t, renderer, PasswordErrorID).BoolAttr("hidden"))

	typeInto(t, renderer, ConfirmPasswordID, "abc123")
	assert.True(t, element(t, renderer, PasswordErrorID).BoolAttr("hidden"))
}

func TestSignInForm_PostsInsteadOfGet(t *testing.T) {
	renderer := mount(t, &SignInForm{})

	form := renderer.GetCurrentVDOM()
	assert.Equal(t, "post", form.StringAttr("method"))

	// Both inputs are named, so a GET submission would put them in the URL.
	assert.Equal(t, PasswordID, element(t, renderer, PasswordID).StringAttr("name"))
	assert.Equal(t, ConfirmPasswordID, element(t, renderer, ConfirmPasswordID).StringAttr("name"))
}
