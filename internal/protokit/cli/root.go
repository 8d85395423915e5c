// Package cli wires up the protokit command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskmesh/protokit/pkg/logger"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool

	log = logger.New()
)

var rootCmd = &cobra.Command{
	Use:   "protokit",
	Short: "Protokit - stub generation driver for taskmesh RPC interfaces",
	Long: `Protokit drives the Protocol Buffers compiler over the RPC modules
declared in a generation manifest (protokit.yaml by default) and keeps the
generated client/server stubs under api/gen in sync with the interface
description files under api/protos.

The generation run is a build-time step, not a service: it is sequential,
fail-fast, and idempotent. Consuming services import the generated packages
or the façades in pkg/client.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logger.DEBUG)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the generation manifest (defaults to protokit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewVersionCmd())
}
