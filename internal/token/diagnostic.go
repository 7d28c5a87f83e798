package token

// DiagCode is one of the single-lowercase-letter diagnostic codes a..m
// defined by the compiler's rule table (spec.md §4.8, §6).
type DiagCode string

const (
	DiagLogicalAnd              DiagCode = "a" // malformed & lexed as &&
	DiagLogicalOr               DiagCode = "a" // malformed | lexed as ||
	DiagIdentRedef              DiagCode = "b"
	DiagIdentUndef              DiagCode = "c"
	DiagFuncParamCountNotMatch  DiagCode = "d"
	DiagFuncParamTypeNotMatch   DiagCode = "e"
	DiagVoidFuncReturn          DiagCode = "f"
	DiagFuncNoReturn            DiagCode = "g"
	DiagConstModify             DiagCode = "h"
	DiagMissingSemicolon        DiagCode = "i"
	DiagMissingBrace            DiagCode = "j"
	DiagMissingSquare           DiagCode = "k"
	DiagPrintfParamCountNoMatch DiagCode = "l"
	DiagIterIdentMisuse         DiagCode = "m"
)

// Diagnostic is a single non-fatal finding attributed to a source line.
type Diagnostic struct {
	Line int
	Code DiagCode
}

// Collector accumulates diagnostics in emission order and produces the
// sorted, deduplicated-by-line report required by spec.md §4.9/§6.
type Collector struct {
	items []Diagnostic
}

// NewCollector returns an empty diagnostic collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a diagnostic in emission order.
func (c *Collector) Add(line int, code DiagCode) {
	c.items = append(c.items, Diagnostic{Line: line, Code: code})
}

// Len reports how many diagnostics have been recorded (pre-dedup).
func (c *Collector) Len() int { return len(c.items) }

// Truncate discards every diagnostic recorded after index n, used to undo
// a speculative parse attempt that failed.
func (c *Collector) Truncate(n int) { c.items = c.items[:n] }

// Empty reports whether no diagnostics have fired.
func (c *Collector) Empty() bool { return len(c.items) == 0 }

// Sorted returns the diagnostics sorted by line (stable) with duplicate
// lines coalesced to their first-seen code, per spec.md's "Diagnostic
// ordering" rule.
func (c *Collector) Sorted() []Diagnostic {
	ordered := make([]Diagnostic, len(c.items))
	copy(ordered, c.items)
	stableSortByLine(ordered)

	out := make([]Diagnostic, 0, len(ordered))
	seenLine := -1
	for _, d := range ordered {
		if d.Line == seenLine {
			continue
		}
		out = append(out, d)
		seenLine = d.Line
	}
	return out
}

func stableSortByLine(d []Diagnostic) {
	// Insertion sort: diagnostic volumes per compilation are small and the
	// list is nearly sorted already (emission order tracks source order
	// for most rules); insertion sort keeps the implementation obviously
	// stable without importing sort for a handful of elements.
	for i := 1; i < len(d); i++ {
		j := i
		for j > 0 && d[j-1].Line > d[j].Line {
			d[j-1], d[j] = d[j], d[j-1]
			j--
		}
	}
}
