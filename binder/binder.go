package binder

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
	"github.com/wippyai/bindings/loader"
	"github.com/wippyai/bindings/locate"
)

// Binder finds precompiled artifacts and initializes Bindings from them.
// A Binder is safe for concurrent use; every initialization carries its
// own runtime configuration.
type Binder struct {
	resolver bindings.Resolver
	loaders  map[bindings.Kind]bindings.Loader
	env      *locate.HostEnv
	log      *zap.Logger
}

// New creates a Binder with the default capabilities: host file-system
// probing, the Go plugin loader for native artifacts, and the wazero
// loader for wasm artifacts.
func New(opts ...Option) *Binder {
	b := &Binder{
		resolver: locate.NewFsResolver(nil),
		log:      zap.NewNop(),
		loaders: map[bindings.Kind]bindings.Loader{
			bindings.KindNative: loader.NewPlugin(),
			bindings.KindWasm:   loader.NewWasm(),
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Find locates either artifact kind under root. An empty root defaults to
// the working directory. On success the returned spec identifies exactly
// which file won the search; on total failure the error lists every
// probed path.
func (b *Binder) Find(root string) (*bindings.ModuleSpec, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.InvalidInput(errors.PhaseSearch, "working directory unavailable: "+err.Error())
		}
		root = cwd
	}

	specs := []*bindings.ModuleSpec{
		{Kind: bindings.KindNative, Name: bindings.NativeFileName},
		{Kind: bindings.KindWasm, Name: bindings.WasmFileName},
	}

	return locate.NewLocator(b.resolver, b.hostEnv()).Locate(root, specs...)
}

// hostEnv returns the fixed descriptor when one was configured, and
// otherwise reads the environment at call time so overrides like the
// compiled-dir key take effect per search.
func (b *Binder) hostEnv() locate.HostEnv {
	if b.env != nil {
		return *b.env
	}
	return locate.CurrentEnv()
}

// Init finds an artifact and initializes a Binding from it in one step.
func (b *Binder) Init(ctx context.Context, opts ...InitOption) (*bindings.Binding, error) {
	cfg := applyInitOptions(opts)

	spec, err := b.Find(cfg.root)
	if err != nil {
		return nil, err
	}

	return b.initialize(ctx, spec, cfg)
}

// Initialize builds a Binding from an already-resolved spec, for callers
// that ran Find themselves.
func (b *Binder) Initialize(ctx context.Context, spec *bindings.ModuleSpec, opts ...InitOption) (*bindings.Binding, error) {
	if spec == nil || spec.ResolvedPath == "" {
		return nil, errors.NotInitialized(errors.PhaseInit, "module spec")
	}
	return b.initialize(ctx, spec, applyInitOptions(opts))
}

func (b *Binder) initialize(ctx context.Context, spec *bindings.ModuleSpec, cfg *initConfig) (*bindings.Binding, error) {
	ld, ok := b.loaders[spec.Kind]
	if !ok {
		return nil, errors.Unsupported(errors.PhaseInit, fmt.Sprintf("artifact kind %q", spec.Kind))
	}

	seed := cfg.exports
	if seed == nil {
		seed = make(bindings.Exports)
	}

	rcfg := &bindings.RuntimeConfig{
		LocateAsset: cfg.locateAsset,
		Symbols:     cfg.symbols,
	}
	if len(cfg.onReady) > 0 {
		handlers := cfg.onReady
		rcfg.OnReady = func() {
			for _, h := range handlers {
				h()
			}
		}
	}

	var table bindings.Exports
	if spec.Kind == bindings.KindWasm {
		// The seed is the live table; the runtime populates it in place.
		rcfg.Exports = seed
		loaded, err := ld.Load(ctx, spec, rcfg)
		if err != nil {
			return nil, err
		}
		table = loaded
	} else {
		loaded, err := ld.Load(ctx, spec, rcfg)
		if err != nil {
			return nil, err
		}
		if loaded == nil {
			return nil, errors.InvalidArtifact(errors.PhaseLoad, spec.ResolvedPath, "artifact exposed no export table")
		}
		// Shallow merge; pre-seeded unrelated keys survive.
		for k, v := range loaded {
			seed[k] = v
		}
		table = seed
	}

	b.log.Info("binding initialized",
		zap.String("kind", string(spec.Kind)),
		zap.String("path", spec.ResolvedPath),
		zap.Int("exports", len(table)))

	return &bindings.Binding{Spec: *spec, Exports: table}, nil
}
