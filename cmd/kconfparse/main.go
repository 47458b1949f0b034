package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kconfparse",
		Short:         "Parser and resolver for Kconfig source-inclusion directives",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `kconfparse parses the source-inclusion subset of the Kconfig
configuration language (source, rsource, osource, orsource directives)
and can resolve the referenced file globs against the filesystem.`,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(resolveCmd)

	if err := rootCmd.Execute(); err != nil {
		printDiagnostic(os.Stderr, err)
		os.Exit(1)
	}
}
