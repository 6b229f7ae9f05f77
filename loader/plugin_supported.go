//go:build linux || darwin || freebsd

package loader

import (
	"context"
	"plugin"

	"go.uber.org/zap"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

// Plugin loads Go shared objects built with -buildmode=plugin.
//
// The artifact must export a variable named Bindings (see BindingsSymbol)
// of type map[string]any; that table becomes the binding's exports.
// Loading is fully synchronous.
type Plugin struct{}

// NewPlugin creates a Go plugin loader.
func NewPlugin() *Plugin {
	return &Plugin{}
}

// Load opens the shared object and returns its conventional export table.
func (p *Plugin) Load(_ context.Context, spec *bindings.ModuleSpec, _ *bindings.RuntimeConfig) (bindings.Exports, error) {
	raw, err := plugin.Open(spec.ResolvedPath)
	if err != nil {
		return nil, errors.Load("open plugin", spec.ResolvedPath, err)
	}

	sym, err := raw.Lookup(BindingsSymbol)
	if err != nil {
		return nil, errors.BadSymbol(spec.ResolvedPath, BindingsSymbol, err)
	}

	table, ok := sym.(*map[string]any)
	if !ok {
		return nil, errors.InvalidArtifact(errors.PhaseLoad, spec.ResolvedPath,
			"symbol "+BindingsSymbol+" is not a map[string]any")
	}
	if table == nil || *table == nil {
		return nil, errors.InvalidArtifact(errors.PhaseLoad, spec.ResolvedPath,
			"artifact exposed no export table")
	}

	Logger().Debug("plugin loaded",
		zap.String("path", spec.ResolvedPath),
		zap.Int("exports", len(*table)))

	return bindings.Exports(*table), nil
}
