// Package errors formats fatal, pre-diagnostic failures (source I/O,
// encoding rejection) with source context and a caret pointing at the
// offending column. It is distinct from the rule (a)-(m) diagnostics
// (internal/token.Diagnostic), which always render as the fixed `<line>
// <code>` pair required by spec.md §6 — this package is for the handful
// of conditions that keep the compiler from reaching that stage at all.
package errors

import (
	"fmt"
	"strings"

	"github.com/FyVoid/blang/internal/token"
)

// SourceError is a single fatal failure tied to a source position.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New returns a SourceError at pos.
func New(pos token.Position, message, source, file string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with its source line and a caret indicator.
// If color is true, ANSI codes highlight the caret and message.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	line := e.sourceLine(e.Pos.Line)
	if line == "" {
		return sb.String()
	}
	lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// sourceLine returns the 1-indexed line of e.Source, or "" if out of range.
func (e *SourceError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatErrors renders every error in errs, numbering them when there is
// more than one.
func FormatErrors(errs []*SourceError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(errs))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
