//go:build !(linux || darwin || freebsd)

package loader

import (
	"context"
	goruntime "runtime"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

// Plugin loads Go shared objects built with -buildmode=plugin. Not
// available on this platform.
type Plugin struct{}

// NewPlugin creates a Go plugin loader.
func NewPlugin() *Plugin {
	return &Plugin{}
}

// Load always fails: the Go plugin package does not support this platform.
func (p *Plugin) Load(_ context.Context, _ *bindings.ModuleSpec, _ *bindings.RuntimeConfig) (bindings.Exports, error) {
	return nil, errors.Unsupported(errors.PhaseLoad, "Go plugins on "+goruntime.GOOS)
}
