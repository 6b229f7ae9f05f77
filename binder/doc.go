// Package binder provides the high-level API for locating and
// initializing precompiled artifacts.
//
// # Quick Start
//
//	b := binder.New()
//	binding, err := b.Init(ctx, binder.WithRoot("/path/to/project"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(binding.Spec.Kind, binding.Spec.ResolvedPath)
//
// Find and Initialize split the two stages for callers that want to
// inspect the search result before loading:
//
//	spec, err := b.Find("/path/to/project")
//	if err != nil {
//	    var exhausted *errors.SearchExhaustedError
//	    if stderrors.As(err, &exhausted) {
//	        // every probed path, in order
//	    }
//	    return err
//	}
//	binding, err := b.Initialize(ctx, spec)
//
// # Options
//
// All per-call settings are named options. There are no positional
// optional arguments and no trailing-callback convention: errors come
// back as return values, and the wasm startup phase is bounded by the
// caller's context instead of hanging when a runtime never becomes ready.
package binder
