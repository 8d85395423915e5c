package protogen

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/taskmesh/protokit/pkg/errors"
	"github.com/taskmesh/protokit/pkg/logger"
)

// Runner executes one generation run over the modules of a manifest.
// It is a build-time tool, not a service: runs are sequential and blocking.
// Re-running over unchanged inputs reproduces the same artifacts, a property
// inherited from the external compiler.
type Runner struct {
	manifest *Manifest
	log      *logger.Logger
}

func NewRunner(manifest *Manifest, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.New()
	}
	return &Runner{
		manifest: manifest,
		log:      log.WithField("component", "protogen"),
	}
}

// Generate runs the compiler for every module in manifest order.
//
// The manifest/resource invariant is checked up front, so a missing proto
// for a later module fails the run before any module is generated. A
// compiler failure aborts the remaining modules; artifacts already written
// are left in place since they are regenerable.
func (r *Runner) Generate(ctx context.Context) error {
	if err := r.manifest.CheckResources(); err != nil {
		return err
	}

	for i := range r.manifest.Modules {
		mod := &r.manifest.Modules[i]
		if err := r.generateModule(ctx, mod); err != nil {
			return err
		}
	}

	r.log.Info("generation complete", "modules", len(r.manifest.Modules))
	return nil
}

func (r *Runner) generateModule(ctx context.Context, mod *Module) error {
	log := r.log.WithField("module", mod.Name)
	log.Debug("generating", "proto", mod.Proto, "output", mod.Output)

	if err := os.MkdirAll(mod.Output, 0o755); err != nil {
		return fmt.Errorf("module %s: failed to create output directory: %w", mod.Name, err)
	}

	staged := mod.StagedPath()
	if err := copyFile(mod.Proto, staged); err != nil {
		return fmt.Errorf("module %s: failed to stage proto: %w", mod.Name, err)
	}
	// The staged copy is an input, not an artifact; remove it whether or
	// not the compiler succeeded.
	defer func() { _ = os.Remove(staged) }()

	args := []string{
		"--proto_path=" + mod.Output,
		"--go_out=" + mod.Output,
		"--go_opt=paths=source_relative",
		"--go-grpc_out=" + mod.Output,
		"--go-grpc_opt=paths=source_relative",
		mod.Base(),
	}

	cmd := exec.CommandContext(ctx, r.manifest.Protoc, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.WrapCompilerError(mod.Name, string(out), err)
	}

	log.Info("module generated", "artifacts", len(mod.Artifacts()))
	return nil
}

// Verify checks a completed generation run: the manifest/resource invariant
// still holds, every module's two artifacts exist, and no staged proto
// residue was left behind in the output tree.
func (r *Runner) Verify() error {
	if err := r.manifest.CheckResources(); err != nil {
		return err
	}

	for _, mod := range r.manifest.Modules {
		for _, artifact := range mod.Artifacts() {
			if _, err := os.Stat(artifact); err != nil {
				return fmt.Errorf("module %s: %w: %s", mod.Name, errors.ErrArtifactMissing, artifact)
			}
		}
		if _, err := os.Stat(mod.StagedPath()); err == nil {
			return fmt.Errorf("module %s: staged proto residue: %s", mod.Name, mod.StagedPath())
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
