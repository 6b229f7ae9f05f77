// Package locate enumerates and probes candidate paths for precompiled
// artifacts.
//
// Candidates produces the fixed, ordered probe list for one artifact name
// under a project root; Locator walks that list for a sequence of module
// specs and commits to the first path that resolves. Probing goes through
// the bindings.Resolver capability, so searches can run against any
// afero file system.
package locate
