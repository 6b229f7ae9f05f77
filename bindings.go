package bindings

import "context"

// Kind identifies the load strategy required by a candidate artifact.
type Kind string

const (
	// KindNative is an in-process shared object loaded synchronously.
	KindNative Kind = "native"
	// KindWasm is a WebAssembly module that needs a runtime-startup
	// phase before its exports are usable.
	KindWasm Kind = "wasm"
)

// Fixed artifact file names probed for each kind. These are conventions
// of the build pipeline, not configurable per call.
const (
	NativeFileName = "bindings.so"
	WasmFileName   = "bindings.wasm"
)

// Exports is the key-value table a loaded artifact exposes to
// application code.
type Exports map[string]any

// ModuleSpec names one candidate artifact kind and its expected file name.
// ResolvedPath is empty until a search succeeds; the locator sets it
// exactly once and it is never changed afterward.
type ModuleSpec struct {
	Kind         Kind
	Name         string
	ResolvedPath string
}

// Binding is a fully initialized artifact: the export table plus the
// spec identifying which artifact was loaded.
type Binding struct {
	Spec    ModuleSpec
	Exports Exports
}

// Resolver probes a single path for a loadable artifact. It returns the
// resolved path, or an error when nothing loadable exists there.
type Resolver interface {
	Resolve(path string) (string, error)
}

// RuntimeConfig carries per-load configuration from the caller down to a
// Loader. Each load gets its own value; loaders never share state
// through it.
type RuntimeConfig struct {
	// Exports is the caller's seed table. For wasm artifacts it becomes
	// the live export table the runtime populates; for native artifacts
	// the binder merges the loaded table onto it.
	Exports Exports

	// LocateAsset resolves auxiliary asset names to host paths. When nil,
	// loaders that support assets install a default that resolves names
	// next to the resolved artifact. A caller-supplied hook is never
	// replaced.
	LocateAsset func(name string) string

	// OnReady is invoked once the artifact's runtime-startup phase has
	// completed, before the initialization entry point runs.
	OnReady func()

	// Symbols lists the symbol names to bind for loaders that cannot
	// enumerate an artifact's exports (dlopen-style libraries).
	Symbols []string
}

// Loader turns a resolved artifact into an export table. Load respects
// ctx cancellation for any runtime-startup phase it performs.
type Loader interface {
	Load(ctx context.Context, spec *ModuleSpec, cfg *RuntimeConfig) (Exports, error)
}
