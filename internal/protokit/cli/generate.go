package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskmesh/protokit/internal/protogen"
)

// NewGenerateCmd creates the command that runs a full generation pass over
// every module in the manifest. The run fails fast: a manifest/resource
// mismatch is reported before any module is generated, and a compiler
// failure aborts the remaining modules.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stubs for every module in the manifest",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	manifest, err := protogen.LoadManifest(configPath)
	if err != nil {
		return err
	}

	runner := protogen.NewRunner(manifest, log)
	if err := runner.Generate(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("Generated %d modules\n", len(manifest.Modules))
	return nil
}
