package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/FyVoid/blang/internal/config"
	blangerrors "github.com/FyVoid/blang/internal/errors"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configPath string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blang",
	Short: "Ahead-of-time compiler for the blang language",
	Long: `blang compiles a small C-like source language straight to a
textual SSA intermediate representation: no interpreter, no bytecode
target, no runtime. Each subcommand stops the pipeline at a different
stage — lex, parse, check, or build — for inspecting or driving it.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose operational logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .blangrc.yaml (default: ./.blangrc.yaml)")
}

func loadConfig(*cobra.Command, []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	if verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
		log.SetPrefix("blang: ")
	}
	return nil
}

func logVerbose(format string, args ...any) {
	if cfg != nil && cfg.Verbose {
		log.Printf(format, args...)
	}
}

// reportSourceError renders a fatal pre-diagnostic failure (source.Load's
// I/O or encoding errors) with source context when available, and prints
// a plain message otherwise.
func reportSourceError(err error) error {
	if srcErr, ok := err.(*blangerrors.SourceError); ok {
		fmt.Fprintln(os.Stderr, srcErr.Format(true))
		return fmt.Errorf("failed to load source")
	}
	return err
}
