package vdom

// DefaultMountID is the id of the mount element when the host page names none.
const DefaultMountID = "app"

// MountAttribute is the body attribute through which the host page names
// its mount element.
const MountAttribute = "data-mount"

// MountSelector returns the CSS selector for the mount element with the given id.
func MountSelector(id string) string {
	if id == "" {
		id = DefaultMountID
	}
	return "#" + id
}
