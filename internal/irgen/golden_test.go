package irgen

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/FyVoid/blang/internal/irpass"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/parser"
)

// TestMain lets go-snaps prune snapshots that no longer correspond to a
// running test, per its documented usage.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

func buildModuleText(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if !p.Diagnostics().Empty() {
		t.Fatalf("unexpected parse diagnostics for %q", src)
	}
	mod := New().Generate(prog)
	for _, fn := range mod.Functions {
		irpass.Coalesce(fn)
	}
	return mod.String()
}

// Each of these end-to-end scenarios mirrors an example from spec.md §8;
// the snapshot asserts the exact rendered module text rather than
// spot-checking individual instructions.
func TestGolden_MainReturnsZero(t *testing.T) {
	snaps.MatchSnapshot(t, buildModuleText(t, "int main() { return 0; }"))
}

func TestGolden_GlobalConstArrayAndLoop(t *testing.T) {
	src := `const int N = 3;
int total;
int main() {
	int a[N] = {1, 2, 3};
	int i;
	total = 0;
	for (i = 0; i < N; i = i + 1) {
		total = total + a[i];
	}
	printf("%d", total);
	return 0;
}`
	snaps.MatchSnapshot(t, buildModuleText(t, src))
}

func TestGolden_FunctionCallAndShortCircuit(t *testing.T) {
	src := `int add(int a, int b) {
	return a + b;
}
int main() {
	int x;
	x = getint();
	if (x > 0 && add(x, 1) > 1) {
		printf("%d", x);
	} else {
		printf("%d", 0);
	}
	return 0;
}`
	snaps.MatchSnapshot(t, buildModuleText(t, src))
}

func TestGolden_ArrayParamDecaysToPointer(t *testing.T) {
	src := `int sum(int a[], int n) {
	int i;
	int s;
	s = 0;
	for (i = 0; i < n; i = i + 1) {
		s = s + a[i];
	}
	return s;
}
int main() {
	int xs[3] = {4, 5, 6};
	printf("%d", sum(xs, 3));
	return 0;
}`
	snaps.MatchSnapshot(t, buildModuleText(t, src))
}
