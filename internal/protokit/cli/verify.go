package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskmesh/protokit/internal/protogen"
)

// NewVerifyCmd creates the command that checks a completed generation run:
// the manifest matches the interface description files on disk, every
// module's two artifacts exist, and no staged proto residue is left in the
// output tree.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify generated artifacts match the manifest",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	manifest, err := protogen.LoadManifest(configPath)
	if err != nil {
		return err
	}

	runner := protogen.NewRunner(manifest, log)
	if err := runner.Verify(); err != nil {
		return err
	}

	fmt.Printf("Verified %d modules\n", len(manifest.Modules))
	return nil
}
