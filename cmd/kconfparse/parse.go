package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kconf-lang/kconfparse/internal/cli/config"
	"github.com/kconf-lang/kconfparse/parser"
	"github.com/kconf-lang/kconfparse/parser/ast"
	"github.com/kconf-lang/kconfparse/parser/errors"
)

var parseJSON bool

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output the AST in JSON format")
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and dump its source directives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		file, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}

		if parseJSON || cfg.Output == "json" {
			return dumpJSON(cmd.OutOrStdout(), file)
		}
		return dumpText(cmd.OutOrStdout(), file)
	},
}

// directiveJSON is the wire shape of one directive in --json output.
type directiveJSON struct {
	Type         string `json:"type"`
	FilenameGlob string `json:"filename_glob"`
	Optional     bool   `json:"optional"`
	Relative     bool   `json:"relative"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
}

func dumpJSON(w io.Writer, file *ast.File) error {
	out := make([]directiveJSON, 0, len(file.Blocks))
	for _, block := range file.Blocks {
		if d, ok := block.(*ast.SourceDirective); ok {
			out = append(out, directiveJSON{
				Type:         d.Type.String(),
				FilenameGlob: d.FilenameGlob,
				Optional:     d.Type.Optional(),
				Relative:     d.Type.Relative(),
				Line:         d.Location.Line,
				Column:       d.Location.Column,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func dumpText(w io.Writer, file *ast.File) error {
	for _, block := range file.Blocks {
		if d, ok := block.(*ast.SourceDirective); ok {
			fmt.Fprintf(w, "%d:%d\t%s %q\n", d.Location.Line, d.Location.Column, d.Type, d.FilenameGlob)
		}
	}
	return nil
}

// printDiagnostic renders err the way the compiler does: located parse
// errors get their span and code, everything else is printed as-is.
func printDiagnostic(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)

	var perr errors.ParseError
	if stderrors.As(err, &perr) {
		red.Fprintf(w, "%s error", perr.Kind)
		fmt.Fprintf(w, " at %s [%s]: %s\n", perr.Location, perr.Code, perr.Message)
		return
	}

	red.Fprint(w, "error")
	fmt.Fprintf(w, ": %v\n", err)
}
