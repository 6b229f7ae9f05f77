package locate

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/errors"
)

func newSpecs() []*bindings.ModuleSpec {
	return []*bindings.ModuleSpec{
		{Kind: bindings.KindNative, Name: bindings.NativeFileName},
		{Kind: bindings.KindWasm, Name: bindings.WasmFileName},
	}
}

func writeFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte{0}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLocate_FirstSpecWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/build/bindings.so")
	writeFile(t, fs, "/proj/build/bindings.wasm")

	loc := NewLocator(NewFsResolver(fs), testEnv)
	spec, err := loc.Locate("/proj", newSpecs()...)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}

	if spec.Kind != bindings.KindNative {
		t.Errorf("kind = %q, want %q", spec.Kind, bindings.KindNative)
	}
	if want := filepath.Join("/proj", "build", "bindings.so"); spec.ResolvedPath != want {
		t.Errorf("resolved = %q, want %q", spec.ResolvedPath, want)
	}
}

func TestLocate_EarlierPathWins(t *testing.T) {
	// build/ is candidate 1, Release/ is candidate 7; build/ must win.
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/Release/bindings.so")
	writeFile(t, fs, "/proj/build/bindings.so")

	loc := NewLocator(NewFsResolver(fs), testEnv)
	spec, err := loc.Locate("/proj", newSpecs()...)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}

	if want := filepath.Join("/proj", "build", "bindings.so"); spec.ResolvedPath != want {
		t.Errorf("resolved = %q, want %q", spec.ResolvedPath, want)
	}
}

func TestLocate_FallsThroughToLaterSpec(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/out/Release/bindings.wasm")

	loc := NewLocator(NewFsResolver(fs), testEnv)
	spec, err := loc.Locate("/proj", newSpecs()...)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}

	if spec.Kind != bindings.KindWasm {
		t.Errorf("kind = %q, want %q", spec.Kind, bindings.KindWasm)
	}
	if want := filepath.Join("/proj", "out", "Release", "bindings.wasm"); spec.ResolvedPath != want {
		t.Errorf("resolved = %q, want %q", spec.ResolvedPath, want)
	}
}

func TestLocate_VersionedCandidate(t *testing.T) {
	fs := afero.NewMemMapFs()
	versioned := filepath.Join("/proj", "compiled", "go1.25.4", "linux", "amd64", "bindings.wasm")
	writeFile(t, fs, versioned)

	loc := NewLocator(NewFsResolver(fs), testEnv)
	spec, err := loc.Locate("/proj", newSpecs()...)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if spec.ResolvedPath != versioned {
		t.Errorf("resolved = %q, want %q", spec.ResolvedPath, versioned)
	}
}

func TestLocate_DirectoryIsNotAMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/proj/build/bindings.so", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, fs, "/proj/build/Release/bindings.so")

	loc := NewLocator(NewFsResolver(fs), testEnv)
	spec, err := loc.Locate("/proj", newSpecs()...)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if want := filepath.Join("/proj", "build", "Release", "bindings.so"); spec.ResolvedPath != want {
		t.Errorf("resolved = %q, want %q", spec.ResolvedPath, want)
	}
}

func TestLocate_Exhausted(t *testing.T) {
	fs := afero.NewMemMapFs()
	loc := NewLocator(NewFsResolver(fs), testEnv)

	specs := newSpecs()
	_, err := loc.Locate("/proj", specs...)
	if err == nil {
		t.Fatal("expected search to fail on empty file system")
	}

	var exhausted *errors.SearchExhaustedError
	if !stderrors.As(err, &exhausted) {
		t.Fatalf("error type = %T, want *SearchExhaustedError", err)
	}

	want := CandidateCount * len(specs)
	if len(exhausted.Attempted) != want {
		t.Fatalf("attempted %d paths, want %d", len(exhausted.Attempted), want)
	}

	// Probe order: all native candidates first, then all wasm candidates.
	if got := exhausted.Attempted[0]; got != filepath.Join("/proj", "build", "bindings.so") {
		t.Errorf("first probe = %q", got)
	}
	if got := exhausted.Attempted[CandidateCount]; got != filepath.Join("/proj", "build", "bindings.wasm") {
		t.Errorf("first wasm probe = %q", got)
	}

	for _, spec := range specs {
		if spec.ResolvedPath != "" {
			t.Errorf("spec %q has resolved path after failed search", spec.Kind)
		}
	}
}

func TestLocate_NoSpecs(t *testing.T) {
	loc := NewLocator(NewFsResolver(afero.NewMemMapFs()), testEnv)
	if _, err := loc.Locate("/proj"); err == nil {
		t.Fatal("expected error for empty spec list")
	}
}

func TestLocate_ReprobesEveryCall(t *testing.T) {
	fs := afero.NewMemMapFs()
	loc := NewLocator(NewFsResolver(fs), testEnv)

	if _, err := loc.Locate("/proj", newSpecs()...); err == nil {
		t.Fatal("expected failure before artifact exists")
	}

	writeFile(t, fs, "/proj/build/bindings.so")
	spec, err := loc.Locate("/proj", newSpecs()...)
	if err != nil {
		t.Fatalf("locate after write: %v", err)
	}
	if spec.ResolvedPath == "" {
		t.Error("resolved path not set on second probe")
	}
}
