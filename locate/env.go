package locate

import (
	goruntime "runtime"

	"github.com/mstoykov/envconfig"
)

// DefaultCompiledDir is the versioned build-output directory name used
// when no override is present in the environment.
const DefaultCompiledDir = "compiled"

// EnvCompiledDir is the environment key that overrides the versioned
// build-output directory name.
const EnvCompiledDir = "NODE_BINDINGS_COMPILED_DIR"

// HostEnv describes the host attributes that shape the versioned
// candidate path. A fixed HostEnv makes enumeration fully deterministic.
type HostEnv struct {
	CompiledDir    string
	RuntimeVersion string
	Platform       string
	Arch           string
}

type envOverrides struct {
	CompiledDir string `envconfig:"NODE_BINDINGS_COMPILED_DIR"`
}

// CurrentEnv reads the host environment descriptor at call time.
func CurrentEnv() HostEnv {
	env := HostEnv{
		CompiledDir:    DefaultCompiledDir,
		RuntimeVersion: goruntime.Version(),
		Platform:       goruntime.GOOS,
		Arch:           goruntime.GOARCH,
	}

	var ov envOverrides
	if err := envconfig.Process("", &ov); err == nil && ov.CompiledDir != "" {
		env.CompiledDir = ov.CompiledDir
	}

	return env
}
