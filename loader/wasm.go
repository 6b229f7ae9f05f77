package loader

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

// InitFuncName is the initialization entry point a wasm artifact may
// export. It is invoked by name after the runtime-startup phase, before
// Load returns.
const InitFuncName = "_initialize"

// Host function names exposed to the guest under the "env" module for
// auxiliary asset access.
const (
	assetSizeFunc = "asset_size"
	assetReadFunc = "asset_read"
)

// Wasm loads WebAssembly artifacts with wazero.
//
// Each Load gets its own wazero runtime, so concurrent loads never share
// state. The returned export table keeps its instance alive; call Close
// to release every runtime this loader created.
type Wasm struct {
	fs       afero.Fs
	mu       sync.Mutex
	runtimes []wazero.Runtime
}

// NewWasm creates a wasm loader reading artifacts and assets from the
// host file system.
func NewWasm() *Wasm {
	return NewWasmWithFs(nil)
}

// NewWasmWithFs creates a wasm loader over fs. A nil fs selects the host
// file system.
func NewWasmWithFs(fs afero.Fs) *Wasm {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Wasm{fs: fs}
}

// Load compiles and instantiates the resolved artifact.
//
// The startup sequence is: install the asset-locator hook if the caller
// did not supply one, instantiate (the module's startup phase, bounded by
// ctx), fire the caller's ready handler, invoke InitFuncName when
// exported, then populate the export table. cfg.Exports, when non-nil,
// becomes the live table.
func (w *Wasm) Load(ctx context.Context, spec *bindings.ModuleSpec, cfg *bindings.RuntimeConfig) (bindings.Exports, error) {
	if cfg == nil {
		cfg = &bindings.RuntimeConfig{}
	}

	data, err := afero.ReadFile(w.fs, spec.ResolvedPath)
	if err != nil {
		return nil, errors.Load("read artifact", spec.ResolvedPath, err)
	}

	if cfg.LocateAsset == nil {
		dir := filepath.Dir(spec.ResolvedPath)
		cfg.LocateAsset = func(name string) string {
			return filepath.Join(dir, name)
		}
	}

	// CloseOnContextDone interrupts in-flight guest execution, so a start
	// function that never returns is bounded by ctx instead of hanging Load.
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().
		WithCloseOnContextDone(true))
	keep := false
	defer func() {
		if !keep {
			_ = r.Close(ctx)
		}
	}()

	envBuilder := r.NewHostModuleBuilder("env")
	envBuilder.NewFunctionBuilder().WithFunc(w.assetSize(cfg)).Export(assetSizeFunc)
	envBuilder.NewFunctionBuilder().WithFunc(w.assetRead(cfg)).Export(assetReadFunc)
	if _, err := envBuilder.Instantiate(ctx); err != nil {
		return nil, errors.Init("install host module", spec.ResolvedPath, err)
	}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return nil, errors.Init("install wasi", spec.ResolvedPath, err)
	}

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return nil, errors.Load("compile module", spec.ResolvedPath, err)
	}

	// Start functions run here; this is the runtime-startup phase and the
	// only suspension point. ctx cancellation bounds it.
	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().
		WithName(spec.Name).
		WithStartFunctions("_start"))
	if err != nil {
		return nil, errors.Init("instantiate module", spec.ResolvedPath, err)
	}

	exports := cfg.Exports
	if exports == nil {
		exports = make(bindings.Exports)
	}
	for name := range compiled.ExportedFunctions() {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			continue
		}
		exports[name] = &Func{name: name, fn: fn}
	}

	if cfg.OnReady != nil {
		cfg.OnReady()
	}

	if init := mod.ExportedFunction(InitFuncName); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, errors.Init("run initialization entry point", spec.ResolvedPath, err)
		}
	}

	w.mu.Lock()
	w.runtimes = append(w.runtimes, r)
	w.mu.Unlock()
	keep = true

	Logger().Debug("wasm artifact loaded",
		zap.String("path", spec.ResolvedPath),
		zap.Int("exports", len(exports)))

	return exports, nil
}

// Close releases every runtime created by this loader. Export tables
// returned by Load are unusable afterward.
func (w *Wasm) Close(ctx context.Context) error {
	w.mu.Lock()
	runtimes := w.runtimes
	w.runtimes = nil
	w.mu.Unlock()

	var first error
	for _, r := range runtimes {
		if err := r.Close(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// assetSize returns a host function reporting the byte size of a named
// asset, or -1 when the asset cannot be located.
func (w *Wasm) assetSize(cfg *bindings.RuntimeConfig) func(context.Context, api.Module, uint32, uint32) int32 {
	return func(_ context.Context, m api.Module, namePtr, nameLen uint32) int32 {
		mem := m.Memory()
		if mem == nil {
			return -1
		}
		name, ok := mem.Read(namePtr, nameLen)
		if !ok {
			return -1
		}
		data, err := afero.ReadFile(w.fs, cfg.LocateAsset(string(name)))
		if err != nil {
			return -1
		}
		return int32(len(data))
	}
}

// assetRead returns a host function copying a named asset into guest
// memory at dstPtr. It returns the byte count written, or -1 on failure.
func (w *Wasm) assetRead(cfg *bindings.RuntimeConfig) func(context.Context, api.Module, uint32, uint32, uint32) int32 {
	return func(_ context.Context, m api.Module, namePtr, nameLen, dstPtr uint32) int32 {
		mem := m.Memory()
		if mem == nil {
			return -1
		}
		name, ok := mem.Read(namePtr, nameLen)
		if !ok {
			return -1
		}
		data, err := afero.ReadFile(w.fs, cfg.LocateAsset(string(name)))
		if err != nil {
			return -1
		}
		if !mem.Write(dstPtr, data) {
			return -1
		}
		return int32(len(data))
	}
}
