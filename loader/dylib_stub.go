//go:build !(linux || darwin)

package loader

import (
	"context"
	goruntime "runtime"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

// Dylib loads C shared libraries via dlopen. Not available on this
// platform.
type Dylib struct{}

// NewDylib creates a dlopen-based loader.
func NewDylib() *Dylib {
	return &Dylib{}
}

// Load always fails: dlopen is not available on this platform.
func (d *Dylib) Load(_ context.Context, _ *bindings.ModuleSpec, _ *bindings.RuntimeConfig) (bindings.Exports, error) {
	return nil, errors.Unsupported(errors.PhaseLoad, "dlopen on "+goruntime.GOOS)
}
