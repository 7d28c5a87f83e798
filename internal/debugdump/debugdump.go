// Package debugdump implements `blang build --debug-dump`: a structural
// dump of the AST and IR module under a labeled, indented header.
// Grounded on the teacher's transitive github.com/kr/pretty +
// github.com/kr/text pair, which exists for exactly this kind of
// structural pretty-printing in test/debug output.
package debugdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/kr/text"
)

// Section writes a labeled, indented dump of v to w using kr/pretty's
// deep `%# v` rendering, indented under the header with kr/text.
func Section(w io.Writer, label string, v any) {
	fmt.Fprintf(w, "=== %s ===\n", label)
	dump := pretty.Sprintf("%# v", v)
	io.WriteString(w, text.Indent(dump, "  "))
	if !strings.HasSuffix(dump, "\n") {
		io.WriteString(w, "\n")
	}
}
