package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FyVoid/blang/internal/debugdump"
	"github.com/FyVoid/blang/internal/irgen"
	"github.com/FyVoid/blang/internal/irpass"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/parser"
	"github.com/FyVoid/blang/internal/semantic"
	"github.com/FyVoid/blang/internal/source"
)

var (
	buildOutput     string
	buildNoCoalesce bool
	buildDebugDump  bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compile a source file to textual IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output path for the IR text (default: stdout, or the config's output path)")
	buildCmd.Flags().BoolVar(&buildNoCoalesce, "no-coalesce", false, "skip the empty-block coalescing pass")
	buildCmd.Flags().BoolVar(&buildDebugDump, "debug-dump", false, "print a structural AST/IR dump to stderr")
}

func runBuild(_ *cobra.Command, args []string) error {
	filename := args[0]
	src, err := source.Load(filename)
	if err != nil {
		return reportSourceError(err)
	}

	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()

	if !p.Diagnostics().Empty() {
		for _, d := range p.Diagnostics().Sorted() {
			fmt.Printf("%d %s\n", d.Line, d.Code)
		}
		return fmt.Errorf("parsing %s failed", filename)
	}

	a := semantic.New()
	a.Check(prog, l.MalformedLogicalOps())
	if !a.Diagnostics().Empty() {
		for _, d := range a.Diagnostics().Sorted() {
			fmt.Printf("%d %s\n", d.Line, d.Code)
		}
		return fmt.Errorf("semantic analysis of %s failed", filename)
	}

	if buildDebugDump {
		debugdump.Section(os.Stderr, "AST", prog)
	}

	g := irgen.New()
	mod := g.Generate(prog)

	coalesce := !buildNoCoalesce
	if cfg != nil && !cfg.Coalesce {
		coalesce = false
	}
	if buildNoCoalesce {
		coalesce = false
	}
	if coalesce {
		for _, fn := range mod.Functions {
			irpass.Coalesce(fn)
		}
	}

	if buildDebugDump {
		debugdump.Section(os.Stderr, "IR", mod)
	}

	out := buildOutput
	if out == "" && cfg != nil {
		out = cfg.OutputPath
	}

	if out == "" || out == "-" {
		mod.WriteTo(os.Stdout)
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()
	mod.WriteTo(f)
	logVerbose("wrote IR to %s", out)
	return nil
}
