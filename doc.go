// Package bindings locates precompiled binary artifacts on disk and loads
// them into the running process behind one uniform Binding value.
//
// Build systems have historically placed compiled artifacts in many
// different directory trees (build/, build/Release/, out/Debug/, ...).
// This library decouples application code from those layouts and from the
// two load strategies the artifact kinds require: native shared objects
// load synchronously in-process, while WebAssembly modules go through an
// additional runtime-startup phase before their exports are usable.
//
// # Architecture Overview
//
//	bindings/            Root package with core types and capability interfaces
//	├── binder/          High-level API: find an artifact, initialize a Binding
//	├── locate/          Candidate path enumeration and file-system probing
//	├── loader/          Concrete loaders: wazero wasm, Go plugin, dlopen
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
//	b := binder.New()
//	binding, err := b.Init(ctx, binder.WithRoot("/path/to/project"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(binding.Spec.ResolvedPath)
//	fn := binding.Exports["compute"].(*loader.Func)
//	results, err := fn.Call(ctx, 5, 3)
//
// # Search Order
//
// For each artifact kind the locator probes nine candidate paths under the
// project root, most recent build convention first; the first path that
// resolves wins and no further candidates are probed. See locate.Candidates
// for the exact order.
//
// # Concurrency
//
// A Binder is safe for concurrent use. Every initialization carries its own
// RuntimeConfig; no process-wide state is shared between loads.
package bindings
