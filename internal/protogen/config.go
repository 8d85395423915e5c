// Package protogen drives the external Protocol Buffers compiler over the
// modules declared in a generation manifest. It stages each module's
// interface description file into the module's output directory, invokes
// the compiler with the Go and Go-gRPC plugins, and removes the staged
// copy, leaving only the generated artifacts.
package protogen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taskmesh/protokit/pkg/errors"
)

// DefaultManifestPath is where the generate and verify commands look for
// the manifest when --config is not given.
const DefaultManifestPath = "protokit.yaml"

// Module is one named unit of RPC interface: one proto file in, one
// directory of generated artifacts out.
type Module struct {
	Name string `yaml:"name"`

	// Proto is the path of the module's interface description file.
	// Defaults to <proto_dir>/<name>.proto.
	Proto string `yaml:"proto"`

	// Output is the directory the generated artifacts land in.
	// Defaults to <output_dir>/<name with underscores removed>.
	Output string `yaml:"output"`
}

// Manifest is the generation configuration: an ordered list of modules plus
// the directory conventions and the compiler binary to invoke.
type Manifest struct {
	Version   string   `yaml:"version"`
	ProtoDir  string   `yaml:"proto_dir"`
	OutputDir string   `yaml:"output_dir"`
	Protoc    string   `yaml:"protoc"`
	Modules   []Module `yaml:"modules"`
}

// LoadManifest reads and validates a generation manifest. Defaults are
// applied before validation, so a minimal manifest only needs proto_dir,
// output_dir and module names. Relative paths in the manifest are resolved
// against the manifest's own directory, so a run behaves the same no matter
// where it is invoked from (go generate runs in the package directory).
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		path = DefaultManifestPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigError("manifest", "",
			fmt.Errorf("failed to read %s: %w", path, err))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapConfigError("manifest", "",
			fmt.Errorf("failed to parse %s: %w", path, err))
	}

	m.applyDefaults(filepath.Dir(path))
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Manifest) applyDefaults(base string) {
	if m.Protoc == "" {
		m.Protoc = "protoc"
	}
	m.ProtoDir = resolve(base, m.ProtoDir)
	m.OutputDir = resolve(base, m.OutputDir)
	for i := range m.Modules {
		mod := &m.Modules[i]
		mod.Proto = resolve(base, mod.Proto)
		mod.Output = resolve(base, mod.Output)
		if mod.Proto == "" && mod.Name != "" {
			mod.Proto = filepath.Join(m.ProtoDir, mod.Name+".proto")
		}
		if mod.Output == "" && mod.Name != "" {
			mod.Output = filepath.Join(m.OutputDir, strings.ReplaceAll(mod.Name, "_", ""))
		}
	}
}

// resolve anchors a relative manifest path at the manifest's directory.
func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) || base == "" || base == "." {
		return path
	}
	return filepath.Join(base, path)
}

// Validate performs the static checks that need no filesystem access:
// module names present and unique, paths resolvable.
func (m *Manifest) Validate() error {
	if len(m.Modules) == 0 {
		return errors.WrapConfigError("manifest", "modules",
			fmt.Errorf("%w: no modules declared", errors.ErrInvalidConfig))
	}

	seen := make(map[string]bool, len(m.Modules))
	for _, mod := range m.Modules {
		if mod.Name == "" {
			return errors.WrapConfigError("manifest", "modules",
				fmt.Errorf("%w: module with empty name", errors.ErrInvalidConfig))
		}
		if seen[mod.Name] {
			return errors.WrapConfigError("manifest", "modules",
				fmt.Errorf("%w: %s", errors.ErrDuplicateModule, mod.Name))
		}
		seen[mod.Name] = true
	}

	return nil
}

// CheckResources enforces the manifest/resource invariant against the
// filesystem, both ways: every declared module must have its interface
// description file, and every .proto under proto_dir must be claimed by a
// module. Any mismatch fails the generation run before a single module is
// generated.
func (m *Manifest) CheckResources() error {
	claimed := make(map[string]bool, len(m.Modules))
	for _, mod := range m.Modules {
		if _, err := os.Stat(mod.Proto); err != nil {
			return errors.WrapConfigError("manifest", "modules",
				fmt.Errorf("%w: module %s: %s", errors.ErrProtoNotFound, mod.Name, mod.Proto))
		}
		claimed[filepath.Clean(mod.Proto)] = true
	}

	if m.ProtoDir == "" {
		return nil
	}

	entries, err := os.ReadDir(m.ProtoDir)
	if err != nil {
		return errors.WrapConfigError("manifest", "proto_dir",
			fmt.Errorf("failed to read %s: %w", m.ProtoDir, err))
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".proto") {
			continue
		}
		path := filepath.Clean(filepath.Join(m.ProtoDir, entry.Name()))
		if !claimed[path] {
			return errors.WrapConfigError("manifest", "proto_dir",
				fmt.Errorf("%w: %s", errors.ErrProtoUnclaimed, path))
		}
	}

	return nil
}

// Base returns the file name of the module's proto, e.g.
// "service_coordinator.proto".
func (mod *Module) Base() string {
	return filepath.Base(mod.Proto)
}

// StagedPath is where the proto is copied to for the compiler invocation.
func (mod *Module) StagedPath() string {
	return filepath.Join(mod.Output, mod.Base())
}

// Artifacts returns the paths of the two generated files the compiler is
// expected to produce for this module.
func (mod *Module) Artifacts() []string {
	stem := strings.TrimSuffix(mod.Base(), ".proto")
	return []string{
		filepath.Join(mod.Output, stem+".pb.go"),
		filepath.Join(mod.Output, stem+"_grpc.pb.go"),
	}
}
