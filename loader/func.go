package loader

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// Func is a callable wasm export held in a Binding's export table.
type Func struct {
	name string
	fn   api.Function
}

// Name returns the export name.
func (f *Func) Name() string {
	return f.name
}

// Call invokes the export with raw stack values.
func (f *Func) Call(ctx context.Context, args ...uint64) ([]uint64, error) {
	return f.fn.Call(ctx, args...)
}

// ParamCount returns the number of parameters the export takes.
func (f *Func) ParamCount() int {
	return len(f.fn.Definition().ParamTypes())
}

// ResultCount returns the number of results the export produces.
func (f *Func) ResultCount() int {
	return len(f.fn.Definition().ResultTypes())
}
