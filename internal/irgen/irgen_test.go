package irgen

import (
	"strings"
	"testing"

	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/irpass"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/parser"
	"github.com/FyVoid/blang/internal/types"
)

// generate lexes, parses, and lowers src to an IR module, assuming a
// syntactically (and semantically) valid program — mirrors
// internal/semantic's analyze helper.
func generate(t *testing.T, src string) *ir.Module {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	return New().Generate(prog)
}

func findFunc(m *ir.Module, name string) *ir.Function {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

func TestGenerate_MainReturnsZero(t *testing.T) {
	m := generate(t, "int main(){return 0;}")

	fn := findFunc(m, "main")
	if fn == nil {
		t.Fatalf("no @main function in %s", m.String())
	}
	if len(m.Functions) != 1 {
		t.Fatalf("expected exactly one function, got %d", len(m.Functions))
	}

	out := m.String()
	if !strings.Contains(out, "define i32 @main()") {
		t.Errorf("missing main signature:\n%s", out)
	}
	if !strings.Contains(out, "ret i32 0") {
		t.Errorf("missing `ret i32 0`:\n%s", out)
	}
}

func TestGenerate_ConstArrayGlobalFolds(t *testing.T) {
	m := generate(t, "const int N = 3+4;\nint a[N];\nint main(){return 0;}")

	if len(m.Globals) != 2 {
		t.Fatalf("expected 2 globals (N, a), got %d: %s", len(m.Globals), m.String())
	}
	var arr *ir.GlobalDef
	for _, g := range m.Globals {
		if g.Name == "a" {
			arr = g
		}
	}
	if arr == nil {
		t.Fatalf("no global @a found: %s", m.String())
	}
	if arr.Type.N != 7 {
		t.Errorf("expected array length 7 (folded 3+4), got %d", arr.Type.N)
	}

	out := m.String()
	if !strings.Contains(out, "[7 x i32]") {
		t.Errorf("expected folded array type [7 x i32] in output:\n%s", out)
	}
}

func TestGenerate_ForLoopWithBreakInIf(t *testing.T) {
	src := `int main(){
		int i;
		for(i=0;i<10;i=i+1){
			if(i==5){
				break;
			}
		}
		return 0;
	}`
	m := generate(t, src)

	fn := findFunc(m, "main")
	if fn == nil {
		t.Fatal("no @main function")
	}

	var foundEndBranch bool
	for _, b := range fn.Blocks {
		if !strings.HasPrefix(b.Label, "for_end") {
			continue
		}
		for _, other := range fn.Blocks {
			for _, succ := range other.Succs {
				if succ == b.Label {
					foundEndBranch = true
				}
			}
		}
	}
	if !foundEndBranch {
		t.Errorf("expected some block to branch to a for_end label:\n%s", m.String())
	}
}

func TestGenerate_ShortCircuitAnd(t *testing.T) {
	src := `int main(){
		int a;
		int b;
		int c;
		if (a && b) c = 1;
		return 0;
	}`
	m := generate(t, src)
	out := m.String()

	if !strings.Contains(out, "alloca i1") {
		t.Errorf("expected the short-circuit result to materialize through an i1 slot:\n%s", out)
	}
}

func TestGenerate_ShortCircuitOr(t *testing.T) {
	src := `int main(){
		int a;
		int b;
		int c;
		if (a || b) c = 1;
		return 0;
	}`
	m := generate(t, src)
	out := m.String()

	if !strings.Contains(out, "alloca i1") {
		t.Errorf("expected the short-circuit result to materialize through an i1 slot:\n%s", out)
	}
}

func TestGenerate_PrintfLiteralAndArgs(t *testing.T) {
	src := `int main(){
		int x;
		char c;
		printf("x=%d c=%c\n", x, c);
		return 0;
	}`
	m := generate(t, src)
	out := m.String()

	for _, want := range []string{"@putstr", "@putint", "@putchar"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected a call to %s:\n%s", want, out)
		}
	}
}

func TestGenerate_ArrayParamDecaysToPointer(t *testing.T) {
	src := `void f(int a[]){
		a[0] = 1;
	}
	int main(){
		int b[3];
		f(b);
		return 0;
	}`
	m := generate(t, src)

	f := findFunc(m, "f")
	if f == nil {
		t.Fatal("no @f function")
	}
	if len(f.Params) != 1 || f.Params[0].Type.Kind() != types.Pointer {
		t.Fatalf("expected one pointer-shaped param, got %+v", f.Params)
	}

	out := m.String()
	if !strings.Contains(out, "define void @f(i32* %a)") {
		t.Errorf("expected f's param to decay to i32*:\n%s", out)
	}
	if !strings.Contains(out, "call void @f(") {
		t.Errorf("expected a call passing the decayed pointer:\n%s", out)
	}
}

func TestGenerate_VoidFuncImplicitReturn(t *testing.T) {
	m := generate(t, "void f(){int x;}\nint main(){return 0;}")

	out := m.String()
	if !strings.Contains(out, "ret void") {
		t.Errorf("expected an implicit `ret void` for f:\n%s", out)
	}
}

func TestCoalesce_RemovesEmptyForwardingBlock(t *testing.T) {
	src := `int main(){
		int i;
		for(i=0;i<10;i=i+1){
		}
		return 0;
	}`
	m := generate(t, src)
	fn := findFunc(m, "main")

	before := len(fn.Blocks)
	irpass.Coalesce(fn)
	after := len(fn.Blocks)

	if after >= before {
		t.Errorf("expected coalescing to remove at least one empty block: before=%d after=%d\n%s", before, after, m.String())
	}

	out := m.String()
	for _, b := range fn.Blocks {
		for _, succ := range b.Succs {
			if !blockExists(fn, succ) {
				t.Errorf("dangling successor %q after coalescing:\n%s", succ, out)
			}
		}
	}
}

func blockExists(fn *ir.Function, label string) bool {
	for _, b := range fn.Blocks {
		if b.Label == label {
			return true
		}
	}
	return false
}
