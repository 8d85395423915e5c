package protogen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmesh/protokit/pkg/errors"
	"github.com/taskmesh/protokit/pkg/logger"
)

// fakeProtocOK behaves like a deterministic compiler: it emits the two
// expected artifacts for whatever proto it is pointed at.
const fakeProtocOK = `#!/bin/sh
out=""
proto=""
for arg in "$@"; do
  case "$arg" in
    --go_out=*) out="${arg#--go_out=}" ;;
    *.proto) proto="$arg" ;;
  esac
done
stem="${proto%.proto}"
printf '// deterministic message code for %s\n' "$proto" > "$out/$stem.pb.go"
printf '// deterministic stub code for %s\n' "$proto" > "$out/${stem}_grpc.pb.go"
`

// fakeProtocFailFirst fails with a diagnostic for mod_one.proto and
// succeeds for everything else.
const fakeProtocFailFirst = `#!/bin/sh
out=""
proto=""
for arg in "$@"; do
  case "$arg" in
    --go_out=*) out="${arg#--go_out=}" ;;
    *.proto) proto="$arg" ;;
  esac
done
if [ "$proto" = "mod_one.proto" ]; then
  echo "mod_one.proto:3:1: expected top-level statement" >&2
  exit 1
fi
stem="${proto%.proto}"
printf '// ok\n' > "$out/$stem.pb.go"
printf '// ok\n' > "$out/${stem}_grpc.pb.go"
`

func writeFakeProtoc(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "protoc")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// testManifest lays out a proto dir with the named modules and returns a
// manifest pointing a fake compiler at them.
func testManifest(t *testing.T, script string, names ...string) *Manifest {
	t.Helper()
	root := t.TempDir()
	protoDir := filepath.Join(root, "protos")
	outDir := filepath.Join(root, "gen")
	require.NoError(t, os.MkdirAll(protoDir, 0o755))

	m := &Manifest{
		Version:   "1.0",
		ProtoDir:  protoDir,
		OutputDir: outDir,
		Protoc:    writeFakeProtoc(t, root, script),
	}
	for _, name := range names {
		proto := filepath.Join(protoDir, name+".proto")
		require.NoError(t, os.WriteFile(proto, []byte("syntax = \"proto3\";\n"), 0o644))
		m.Modules = append(m.Modules, Module{Name: name})
	}
	m.applyDefaults("")
	require.NoError(t, m.Validate())
	return m
}

func quietLogger() *logger.Logger {
	return logger.NewWithConfig(logger.Config{Level: logger.ERROR, Output: os.Stderr})
}

func TestRunnerGenerate(t *testing.T) {
	m := testManifest(t, fakeProtocOK, "mod_one", "mod_two")
	runner := NewRunner(m, quietLogger())

	require.NoError(t, runner.Generate(context.Background()))

	for _, mod := range m.Modules {
		entries, err := os.ReadDir(mod.Output)
		require.NoError(t, err, "output dir for %s", mod.Name)
		// exactly the two artifacts, no staged proto residue
		assert.Len(t, entries, 2, "module %s", mod.Name)
		for _, artifact := range mod.Artifacts() {
			_, err := os.Stat(artifact)
			assert.NoError(t, err, "artifact %s", artifact)
		}
		_, err = os.Stat(mod.StagedPath())
		assert.True(t, os.IsNotExist(err), "staged proto should be removed")
	}
}

func TestRunnerGenerateIsIdempotent(t *testing.T) {
	m := testManifest(t, fakeProtocOK, "mod_one", "mod_two")
	runner := NewRunner(m, quietLogger())

	require.NoError(t, runner.Generate(context.Background()))

	first := make(map[string][]byte)
	for _, mod := range m.Modules {
		for _, artifact := range mod.Artifacts() {
			data, err := os.ReadFile(artifact)
			require.NoError(t, err)
			first[artifact] = data
		}
	}

	require.NoError(t, runner.Generate(context.Background()))

	for artifact, want := range first {
		got, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.Equal(t, want, got, "artifact %s changed across identical runs", artifact)
	}
}

func TestRunnerMissingProtoFailsBeforeGenerating(t *testing.T) {
	m := testManifest(t, fakeProtocOK, "mod_one")
	// Declare a module whose proto does not exist. Its position after
	// mod_one must not matter: validation runs before any generation.
	m.Modules = append(m.Modules, Module{
		Name:   "mod_missing",
		Proto:  filepath.Join(m.ProtoDir, "mod_missing.proto"),
		Output: filepath.Join(m.OutputDir, "modmissing"),
	})

	runner := NewRunner(m, quietLogger())
	err := runner.Generate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrProtoNotFound))
	// fail-fast: mod_one was never generated either
	_, statErr := os.Stat(m.Modules[0].Output)
	assert.True(t, os.IsNotExist(statErr), "no module should have been generated")
}

func TestRunnerUnclaimedProtoFails(t *testing.T) {
	m := testManifest(t, fakeProtocOK, "mod_one")
	stray := filepath.Join(m.ProtoDir, "stray.proto")
	require.NoError(t, os.WriteFile(stray, []byte("syntax = \"proto3\";\n"), 0o644))

	runner := NewRunner(m, quietLogger())
	err := runner.Generate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrProtoUnclaimed))
}

func TestRunnerCompilerFailureAbortsRemainingModules(t *testing.T) {
	m := testManifest(t, fakeProtocFailFirst, "mod_one", "mod_two")
	runner := NewRunner(m, quietLogger())

	err := runner.Generate(context.Background())
	require.Error(t, err)

	ce, ok := errors.AsCompilerError(err)
	require.True(t, ok, "expected a compiler error, got %v", err)
	assert.Equal(t, "mod_one", ce.Module)
	assert.Contains(t, ce.Diagnostic, "expected top-level statement")

	// mod_two must not have been generated after the failure
	for _, artifact := range m.Modules[1].Artifacts() {
		_, statErr := os.Stat(artifact)
		assert.True(t, os.IsNotExist(statErr), "artifact %s should not exist", artifact)
	}

	// the staged copy for the failed module is cleaned up regardless
	_, statErr := os.Stat(m.Modules[0].StagedPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunnerVerify(t *testing.T) {
	m := testManifest(t, fakeProtocOK, "mod_one", "mod_two")
	runner := NewRunner(m, quietLogger())

	require.NoError(t, runner.Generate(context.Background()))
	require.NoError(t, runner.Verify())

	t.Run("missing artifact", func(t *testing.T) {
		require.NoError(t, os.Remove(m.Modules[1].Artifacts()[0]))
		err := runner.Verify()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrArtifactMissing))
	})
}

func TestRunnerVerifyRejectsStagedResidue(t *testing.T) {
	m := testManifest(t, fakeProtocOK, "mod_one")
	runner := NewRunner(m, quietLogger())
	require.NoError(t, runner.Generate(context.Background()))

	// Simulate a run that crashed between compiling and cleanup.
	require.NoError(t, copyFile(m.Modules[0].Proto, m.Modules[0].StagedPath()))

	err := runner.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staged proto residue")
}
