package binder

import (
	"go.uber.org/zap"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/locate"
)

// Option configures a Binder at construction time.
type Option func(*Binder)

// WithResolver replaces the file-system probe capability.
func WithResolver(r bindings.Resolver) Option {
	return func(b *Binder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithLoader replaces or adds the loader used for one artifact kind.
func WithLoader(kind bindings.Kind, l bindings.Loader) Option {
	return func(b *Binder) {
		if l != nil {
			b.loaders[kind] = l
		}
	}
}

// WithHostEnv fixes the host environment descriptor instead of reading it
// at each Find.
func WithHostEnv(env locate.HostEnv) Option {
	return func(b *Binder) {
		b.env = &env
	}
}

// WithLogger configures the binder's logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.log = l
		}
	}
}

// initConfig collects the per-call optional settings. Optional arguments
// are named options rather than positional values, so there is nothing to
// disambiguate at call sites.
type initConfig struct {
	root        string
	exports     bindings.Exports
	onReady     []func()
	locateAsset func(name string) string
	symbols     []string
}

// InitOption configures a single Init or Initialize call.
type InitOption func(*initConfig)

func applyInitOptions(opts []InitOption) *initConfig {
	cfg := &initConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRoot sets the project root to search under. Defaults to the
// working directory.
func WithRoot(root string) InitOption {
	return func(c *initConfig) {
		c.root = root
	}
}

// WithExports seeds the binding's export table. For wasm artifacts the
// seed becomes the live table the runtime populates; for native artifacts
// the loaded table is merged onto it without deleting existing keys.
func WithExports(seed bindings.Exports) InitOption {
	return func(c *initConfig) {
		c.exports = seed
	}
}

// WithOnReady registers a ready handler. Handlers chain in registration
// order and fire after the artifact's startup phase, before its
// initialization entry point runs.
func WithOnReady(fn func()) InitOption {
	return func(c *initConfig) {
		if fn != nil {
			c.onReady = append(c.onReady, fn)
		}
	}
}

// WithLocateAsset supplies the auxiliary asset hook. When omitted, wasm
// loads resolve asset names next to the resolved artifact.
func WithLocateAsset(fn func(name string) string) InitOption {
	return func(c *initConfig) {
		c.locateAsset = fn
	}
}

// WithSymbols declares the symbol names to bind for loaders that cannot
// enumerate exports.
func WithSymbols(names ...string) InitOption {
	return func(c *initConfig) {
		c.symbols = append(c.symbols, names...)
	}
}
