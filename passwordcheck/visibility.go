package passwordcheck

// Visibility is the display mode of a password field.
type Visibility int

const (
	Masked Visibility = iota // Default
	Revealed
)

// Icon classes swapped on the toggle icon.
const (
	IconMasked   = "fa-eye"
	IconRevealed = "fa-eye-slash"
)

// Toggle returns the opposite mode. Toggling twice yields the original mode.
func (v Visibility) Toggle() Visibility {
	if v == Revealed {
		return Masked
	}
	return Revealed
}

// InputType is the value of the input element's type attribute.
func (v Visibility) InputType() string {
	if v == Revealed {
		return "text"
	}
	return "password"
}

// IconClass is the icon class that goes with the mode.
func (v Visibility) IconClass() string {
	if v == Revealed {
		return IconRevealed
	}
	return IconMasked
}

func (v Visibility) String() string {
	if v == Revealed {
		return "revealed"
	}
	return "masked"
}
