// Package passwordcheck holds the rules behind the sign-up form: when the
// submit control may be enabled and how a password field switches between
// masked and revealed mode.
//
// This package has no build tags and no DOM access, so both the WASM
// components and native tests share it.
package passwordcheck

// FormState is the derived UI state of the form. It is never authoritative:
// it is recomputed from the current field values on every input event.
type FormState struct {
	SubmitEnabled bool
	ErrorVisible  bool
}

// Matches reports whether the two values are equal and non-empty.
func Matches(password, confirm string) bool {
	return password == confirm && password != ""
}

// Evaluate computes the form state for the current field values.
// The error indicator is shown exactly when submitting is not allowed.
func Evaluate(password, confirm string) FormState {
	ok := Matches(password, confirm)
	return FormState{
		SubmitEnabled: ok,
		ErrorVisible:  !ok,
	}
}

// InitialState is the state before the user has typed anything.
// Evaluate is only run on input events, so the submit control starts
// disabled and the error indicator starts hidden.
func InitialState() FormState {
	return FormState{}
}
