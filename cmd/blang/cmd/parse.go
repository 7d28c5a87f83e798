package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FyVoid/blang/internal/astprint"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/parser"
	"github.com/FyVoid/blang/internal/source"
)

var (
	parseTrace       bool
	parseTraceFormat string
	parseTraceGrep   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "print parse-trace events alongside the AST")
	parseCmd.Flags().StringVar(&parseTraceFormat, "trace-format", "", "trace output format: text or json (default: config traceFormat)")
	parseCmd.Flags().StringVar(&parseTraceGrep, "trace-grep", "", "only print trace events whose rule name matches this glob")
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	src, err := source.Load(filename)
	if err != nil {
		return reportSourceError(err)
	}

	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()

	fmt.Println(astprint.Program(prog))

	for _, lexErr := range l.Errors() {
		fmt.Fprintln(os.Stderr, lexErr.Error())
	}
	for _, d := range p.Diagnostics().Sorted() {
		fmt.Printf("%d %s\n", d.Line, d.Code)
	}

	if parseTrace {
		if err := printTrace(p.Trace()); err != nil {
			return err
		}
	}

	exit := 0
	if !p.Diagnostics().Empty() {
		exit = 1
	}
	if exit != 0 {
		os.Exit(exit)
	}
	return nil
}

func printTrace(tr *parser.Trace) error {
	format := parseTraceFormat
	if format == "" && cfg != nil {
		format = cfg.TraceFormat
	}

	events := tr.Events()
	if parseTraceGrep != "" {
		events = tr.Filter(parseTraceGrep)
	}

	if format == "json" {
		filtered := parser.NewTrace()
		for _, e := range events {
			filtered.Emit(e)
		}
		raw, err := filtered.PrettyJSON()
		if err != nil {
			return fmt.Errorf("rendering trace json: %w", err)
		}
		fmt.Println(string(raw))
		return nil
	}

	for _, e := range events {
		fmt.Printf("trace: %s @%d [%d,%d)\n", e.Name, e.Line, e.FromToken, e.ToToken)
	}
	return nil
}
