//go:build linux || darwin

package loader

import (
	"context"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

// Dylib loads C shared libraries via dlopen.
//
// dlopen cannot enumerate a library's exports, so the caller declares the
// symbol names to bind through RuntimeConfig.Symbols. Every declared
// symbol must resolve; a missing one fails the whole load.
type Dylib struct{}

// NewDylib creates a dlopen-based loader.
func NewDylib() *Dylib {
	return &Dylib{}
}

// Load opens the library and binds each declared symbol as a Symbol value.
func (d *Dylib) Load(_ context.Context, spec *bindings.ModuleSpec, cfg *bindings.RuntimeConfig) (bindings.Exports, error) {
	if cfg == nil || len(cfg.Symbols) == 0 {
		return nil, errors.InvalidInput(errors.PhaseLoad, "dylib loading requires declared symbol names")
	}

	handle, err := purego.Dlopen(spec.ResolvedPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Load("dlopen", spec.ResolvedPath, err)
	}

	exports := make(bindings.Exports, len(cfg.Symbols))
	for _, name := range cfg.Symbols {
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return nil, errors.BadSymbol(spec.ResolvedPath, name, err)
		}
		exports[name] = Symbol(addr)
	}

	Logger().Debug("dylib loaded",
		zap.String("path", spec.ResolvedPath),
		zap.Int("symbols", len(exports)))

	return exports, nil
}
