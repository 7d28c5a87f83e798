// Command blang is the entry point for the ahead-of-time compiler: lex,
// parse, check, and build subcommands over the cobra command tree in
// cmd/blang/cmd.
package main

import (
	"fmt"
	"os"

	"github.com/FyVoid/blang/cmd/blang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
