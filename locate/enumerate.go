package locate

import "path/filepath"

// CandidateCount is the number of probe paths Candidates returns for
// every (root, name) pair.
const CandidateCount = 9

// Candidates returns the ordered probe list for name under root. The
// order is load-bearing: earlier entries reflect more recent build-output
// conventions and win when multiple artifacts exist on disk. The result
// always has exactly CandidateCount entries. Pure, no I/O.
func Candidates(root, name string, env HostEnv) []string {
	return []string{
		filepath.Join(root, "build", name),
		filepath.Join(root, "build", "Debug", name),
		filepath.Join(root, "build", "Release", name),
		filepath.Join(root, "out", "Debug", name),
		filepath.Join(root, "Debug", name),
		filepath.Join(root, "out", "Release", name),
		filepath.Join(root, "Release", name),
		filepath.Join(root, "build", "default", name),
		filepath.Join(root, env.CompiledDir, env.RuntimeVersion, env.Platform, env.Arch, name),
	}
}
