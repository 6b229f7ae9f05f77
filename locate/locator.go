package locate

import (
	"go.uber.org/zap"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

// Locator probes candidate paths for a set of module specs.
//
// Every Locate call re-probes the file system from scratch; there is no
// memoization. Location runs once at startup in the expected use, so
// repeated probe cost is acceptable.
type Locator struct {
	resolver bindings.Resolver
	env      HostEnv
}

// NewLocator creates a locator using resolver to probe paths. A nil
// resolver selects the host file system.
func NewLocator(resolver bindings.Resolver, env HostEnv) *Locator {
	if resolver == nil {
		resolver = NewFsResolver(nil)
	}
	return &Locator{resolver: resolver, env: env}
}

// Locate probes every candidate path of every spec in order and returns
// the first spec whose candidate resolves, with ResolvedPath set. This is
// a short-circuit search, not best-match: once a candidate resolves, no
// further specs or candidates are probed. When nothing resolves the
// returned SearchExhaustedError lists every attempted path in probe order.
func (l *Locator) Locate(root string, specs ...*bindings.ModuleSpec) (*bindings.ModuleSpec, error) {
	if len(specs) == 0 {
		return nil, errors.InvalidInput(errors.PhaseSearch, "no module specs given")
	}

	var attempted []string
	for _, spec := range specs {
		for _, candidate := range Candidates(root, spec.Name, l.env) {
			resolved, err := l.resolver.Resolve(candidate)
			if err != nil {
				attempted = append(attempted, candidate)
				continue
			}
			spec.ResolvedPath = resolved
			Logger().Debug("artifact located",
				zap.String("kind", string(spec.Kind)),
				zap.String("path", resolved),
				zap.Int("probes", len(attempted)+1))
			return spec, nil
		}
	}

	return nil, &errors.SearchExhaustedError{Attempted: attempted}
}
