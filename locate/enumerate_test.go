package locate

import (
	"path/filepath"
	"reflect"
	goruntime "runtime"
	"testing"
)

var testEnv = HostEnv{
	CompiledDir:    "compiled",
	RuntimeVersion: "go1.25.4",
	Platform:       "linux",
	Arch:           "amd64",
}

func TestCandidates_OrderAndCount(t *testing.T) {
	got := Candidates("/proj", "bindings.so", testEnv)

	want := []string{
		filepath.Join("/proj", "build", "bindings.so"),
		filepath.Join("/proj", "build", "Debug", "bindings.so"),
		filepath.Join("/proj", "build", "Release", "bindings.so"),
		filepath.Join("/proj", "out", "Debug", "bindings.so"),
		filepath.Join("/proj", "Debug", "bindings.so"),
		filepath.Join("/proj", "out", "Release", "bindings.so"),
		filepath.Join("/proj", "Release", "bindings.so"),
		filepath.Join("/proj", "build", "default", "bindings.so"),
		filepath.Join("/proj", "compiled", "go1.25.4", "linux", "amd64", "bindings.so"),
	}

	if len(got) != CandidateCount {
		t.Fatalf("got %d candidates, want %d", len(got), CandidateCount)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("candidate order mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestCandidates_Deterministic(t *testing.T) {
	a := Candidates("/proj", "bindings.wasm", testEnv)
	b := Candidates("/proj", "bindings.wasm", testEnv)
	if !reflect.DeepEqual(a, b) {
		t.Error("enumeration is not deterministic for fixed inputs")
	}
}

func TestCandidates_CompiledDirOverride(t *testing.T) {
	env := testEnv
	env.CompiledDir = "prebuilt"

	got := Candidates("/proj", "bindings.so", env)
	want := filepath.Join("/proj", "prebuilt", "go1.25.4", "linux", "amd64", "bindings.so")
	if got[8] != want {
		t.Errorf("versioned candidate = %q, want %q", got[8], want)
	}
}

func TestCurrentEnv_Defaults(t *testing.T) {
	env := CurrentEnv()

	if env.CompiledDir != DefaultCompiledDir {
		t.Errorf("CompiledDir = %q, want %q", env.CompiledDir, DefaultCompiledDir)
	}
	if env.RuntimeVersion != goruntime.Version() {
		t.Errorf("RuntimeVersion = %q, want %q", env.RuntimeVersion, goruntime.Version())
	}
	if env.Platform != goruntime.GOOS || env.Arch != goruntime.GOARCH {
		t.Errorf("Platform/Arch = %s/%s, want %s/%s", env.Platform, env.Arch, goruntime.GOOS, goruntime.GOARCH)
	}
}

func TestCurrentEnv_Override(t *testing.T) {
	t.Setenv(EnvCompiledDir, "prebuilt")

	env := CurrentEnv()
	if env.CompiledDir != "prebuilt" {
		t.Errorf("CompiledDir = %q, want %q", env.CompiledDir, "prebuilt")
	}
}
