// Command containers demonstrates the containers of this module from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "containers",
		Version:       version,
		Short:         "Build containers from arguments and print them",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newTreeCmd(), newListCmd(), newQueueCmd(), newStackCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
