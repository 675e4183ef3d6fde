//go:build js && wasm && !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/passwordcheck/console"
)

// callOnInit invokes the OnInit lifecycle method in production mode.
// Panics are recovered and logged so one component cannot take down the page.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("ERROR: OnInit panic in component %s: %v", key, rec))
		}
	}()
	initializer.OnInit()
}
