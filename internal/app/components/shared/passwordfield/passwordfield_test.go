//go:build !wasm

package passwordfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/passwordcheck/events"
	"github.com/vcrobe/passwordcheck/passwordcheck"
	"github.com/vcrobe/passwordcheck/testcomponents"
	"github.com/vcrobe/passwordcheck/vdom"
)

func newField() *PasswordField {
	return &PasswordField{
		ID:       "password",
		ToggleID: "togglePassword",
		Label:    "Password",
	}
}

func click(t *testing.T, n *vdom.VNode) {
	t.Helper()
	require.NotNil(t, n)
	handler, ok := n.Attributes["onClick"].(func())
	require.True(t, ok, "onClick handler missing on %q", n.StringAttr("id"))
	handler()
}

func TestPasswordField_InitialRenderIsMasked(t *testing.T) {
	field := newField()
	root := testcomponents.NewTestRenderer(field).RenderRoot()

	input := root.FindByID("password")
	require.NotNil(t, input)
	assert.Equal(t, "password", input.StringAttr("type"))

	icon := root.FindByID("togglePassword")
	require.NotNil(t, icon)
	assert.True(t, icon.HasClass(passwordcheck.IconMasked))
	assert.False(t, icon.HasClass(passwordcheck.IconRevealed))

	label := root.Children[0]
	assert.Equal(t, "label", label.Tag)
	assert.Equal(t, "password", label.StringAttr("for"))
}

func TestPasswordField_ClickTogglesAndRestores(t *testing.T) {
	field := newField()
	renderer := testcomponents.NewTestRenderer(field)
	renderer.RenderRoot()

	click(t, renderer.GetCurrentVDOM().FindByID("togglePassword"))

	root := renderer.GetCurrentVDOM()
	assert.Equal(t, "text", root.FindByID("password").StringAttr("type"))
	icon := root.FindByID("togglePassword")
	assert.True(t, icon.HasClass(passwordcheck.IconRevealed))
	assert.False(t, icon.HasClass(passwordcheck.IconMasked))
	assert.True(t, icon.HasClass("fa-solid"), "unrelated classes must be kept")

	click(t, root.FindByID("togglePassword"))

	root = renderer.GetCurrentVDOM()
	assert.Equal(t, "password", root.FindByID("password").StringAttr("type"))
	assert.True(t, root.FindByID("togglePassword").HasClass(passwordcheck.IconMasked))
	assert.Equal(t, 3, renderer.RenderCount())
}

func TestPasswordField_InputForwardsValue(t *testing.T) {
	var got []string
	field := newField()
	field.OnInput = func(v string) { got = append(got, v) }

	root := testcomponents.NewTestRenderer(field).RenderRoot()
	handler, ok := root.FindByID("password").Attributes["onInput"].(func(events.ChangeEventArgs))
	require.True(t, ok)

	handler(events.ChangeEventArgs{Value: "a"})
	handler(events.ChangeEventArgs{Value: "ab"})

	assert.Equal(t, []string{"a", "ab"}, got)
}

func TestPasswordField_InputWithoutHandler(t *testing.T) {
	field := newField()
	assert.NotPanics(t, func() {
		field.HandleInput(events.ChangeEventArgs{Value: "x"})
	})
}

func TestPasswordField_ApplyPropsKeepsVisibility(t *testing.T) {
	live := newField()
	live.Visibility = passwordcheck.Revealed

	live.ApplyProps(&PasswordField{
		ID:       "confirmPassword",
		ToggleID: "toggleConfirmPassword",
		Label:    "Confirm Password",
		Value:    "abc",
	})

	assert.Equal(t, passwordcheck.Revealed, live.Visibility)
	assert.Equal(t, "confirmPassword", live.ID)
	assert.Equal(t, "toggleConfirmPassword", live.ToggleID)
	assert.Equal(t, "abc", live.Value)
}
