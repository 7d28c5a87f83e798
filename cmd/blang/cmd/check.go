package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/parser"
	"github.com/FyVoid/blang/internal/semantic"
	"github.com/FyVoid/blang/internal/source"
	"github.com/FyVoid/blang/internal/token"
)

var checkDumpSymbols bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run lexical, syntactic, and semantic analysis and print diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkDumpSymbols, "dump-symbols", false, "also print every global symbol name, naturally sorted")
}

func runCheck(_ *cobra.Command, args []string) error {
	filename := args[0]
	src, err := source.Load(filename)
	if err != nil {
		return reportSourceError(err)
	}

	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()

	a := semantic.New()
	a.Check(prog, l.MalformedLogicalOps())

	diags := token.NewCollector()
	for _, d := range p.Diagnostics().Sorted() {
		diags.Add(d.Line, d.Code)
	}
	for _, d := range a.Diagnostics().Sorted() {
		diags.Add(d.Line, d.Code)
	}

	for _, lexErr := range l.Errors() {
		fmt.Fprintln(os.Stderr, lexErr.Error())
	}
	for _, d := range diags.Sorted() {
		fmt.Printf("%d %s\n", d.Line, d.Code)
	}

	if checkDumpSymbols {
		dumpSymbols(a)
	}

	failOnDiagnostic := cfg == nil || cfg.FailOnDiagnostic
	if !diags.Empty() && failOnDiagnostic {
		os.Exit(1)
	}
	return nil
}

func dumpSymbols(a *semantic.Analyzer) {
	names := a.Env().Global().Names()
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool { return natural.Less(sorted[i], sorted[j]) })

	fmt.Fprintln(os.Stderr, "--- symbols ---")
	for _, n := range sorted {
		fmt.Fprintln(os.Stderr, n)
	}
}
