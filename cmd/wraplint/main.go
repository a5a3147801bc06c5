// Command wraplint checks line-wrap indentation of wrapped declaration
// headers in Java source files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "wraplint [files]",
		Short:         "Line-wrap indentation checker for Java sources",
		Long:          "wraplint parses Java files and verifies that every continuation line of a wrapped declaration header is indented according to the configured wrap width.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, verbose, args)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default .wraplint.yaml when present)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wraplint version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wraplint %s\n", version)
		},
	}
}
