package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/source"
	"github.com/FyVoid/blang/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	src, err := source.Load(filename)
	if err != nil {
		return reportSourceError(err)
	}
	logVerbose("tokenizing %s (%d bytes)", filename, len(src))

	l := lexer.New(src)
	count := 0
	for {
		tok := l.NextToken()
		fmt.Println(tok.String())
		count++
		if tok.Type == token.EOF {
			break
		}
	}
	for _, lexErr := range l.Errors() {
		fmt.Fprintln(os.Stderr, lexErr.Error())
	}
	logVerbose("%d tokens", count)
	return nil
}
