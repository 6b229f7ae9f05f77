// Package loader provides the concrete load capabilities behind a
// Binding.
//
// Three loaders cover the two artifact kinds:
//
//	Wasm    WebAssembly modules via wazero, with a runtime-startup phase,
//	        asset-locator hook, and by-name initialization entry point
//	Plugin  Go shared objects via the plugin package, exposing the
//	        conventional Bindings symbol table
//	Dylib   C shared libraries via dlopen/dlsym (purego), binding a
//	        caller-declared symbol list
//
// Plugin and Dylib are synchronous; Wasm performs its startup phase under
// the caller's context, so a module that never becomes ready is bounded
// by ctx cancellation rather than hanging forever.
package loader
