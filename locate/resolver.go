package locate

import (
	"github.com/spf13/afero"

	"github.com/wippyai/bindings/errors"
)

// FsResolver probes the file system for regular files. The zero fs
// defaults to the host file system; tests inject afero.NewMemMapFs.
type FsResolver struct {
	fs afero.Fs
}

// NewFsResolver creates a resolver over fs. A nil fs selects the host
// file system.
func NewFsResolver(fs afero.Fs) *FsResolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FsResolver{fs: fs}
}

// Resolve returns path unchanged when a regular file exists there.
func (r *FsResolver) Resolve(path string) (string, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return "", errors.NotFound(errors.PhaseSearch, "artifact", path)
	}
	if info.IsDir() {
		return "", errors.InvalidArtifact(errors.PhaseSearch, path, "is a directory")
	}
	return path, nil
}
