package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kconf-lang/kconfparse/internal/cli/config"
	"github.com/kconf-lang/kconfparse/resolver"
)

var (
	resolveBase    string
	resolveVerbose bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveBase, "base", "", "Base directory for non-relative directives (default: base_dir from config)")
	resolveCmd.Flags().BoolVar(&resolveVerbose, "verbose", false, "Trace glob expansion")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Args:  cobra.ExactArgs(1),
	Short: "Recursively resolve the source directives of a file",
	Long:  "Parse the given file, expand each directive's glob against the filesystem, and recursively parse every matched file. Prints the resolved files in inclusion order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		base := resolveBase
		if base == "" {
			base = cfg.BaseDir
		}
		base, err = filepath.Abs(base)
		if err != nil {
			return err
		}

		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		log := zap.NewNop()
		if resolveVerbose || cfg.Verbose {
			log, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()
		}

		r := resolver.New(osfs.New("/"), base, resolver.WithLogger(log))
		resolved, err := r.Resolve(root)
		if err != nil {
			return err
		}

		for _, rf := range resolved {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d directive(s)\n", rf.Path, len(rf.File.Blocks))
		}
		return nil
	},
}
