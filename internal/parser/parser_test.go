package parser

import (
	"testing"

	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/token"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if prog == nil {
		t.Fatalf("ParseProgram returned nil for %q", src)
	}
	return prog, p
}

func TestParseMainReturn(t *testing.T) {
	prog, p := parseProgram(t, "int main(){return 0;}")
	if prog.Main == nil {
		t.Fatalf("expected a main function")
	}
	if len(prog.Main.Body.Items) != 1 {
		t.Fatalf("expected one statement in main, got %d", len(prog.Main.Body.Items))
	}
	ret, ok := prog.Main.Body.Items[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", prog.Main.Body.Items[0])
	}
	lit, ok := ret.Value.(*ast.IntLit)
	if !ok || lit.Value != 0 {
		t.Fatalf("expected int literal 0, got %#v", ret.Value)
	}
	if !p.Diagnostics().Empty() {
		t.Fatalf("expected no diagnostics, got %v", p.Diagnostics().Sorted())
	}
}

func TestParseGlobalConstArrayDecl(t *testing.T) {
	prog, _ := parseProgram(t, "const int N = 3+4; int a[N]; int main(){return 0;}")
	if len(prog.Items) != 2 {
		t.Fatalf("expected 2 top-level items, got %d", len(prog.Items))
	}
	decl, ok := prog.Items[0].(*ast.Decl)
	if !ok || !decl.Const {
		t.Fatalf("expected a const decl, got %#v", prog.Items[0])
	}
}

func TestParseFuncDefVsDecl(t *testing.T) {
	prog, _ := parseProgram(t, "int f(int a){return a;} int main(){return f(1);}")
	if len(prog.Items) != 1 {
		t.Fatalf("expected one top-level function, got %d", len(prog.Items))
	}
	fn, ok := prog.Items[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %T", prog.Items[0])
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "a" {
		t.Fatalf("unexpected params: %#v", fn.Params)
	}
}

func TestParseForBreak(t *testing.T) {
	prog, p := parseProgram(t, "int main(){int x=0; for(x=0; x<3; x=x+1) if(x==1) break; return x;}")
	if !p.Diagnostics().Empty() {
		t.Fatalf("expected no diagnostics, got %v", p.Diagnostics().Sorted())
	}
	if len(prog.Main.Body.Items) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Main.Body.Items))
	}
	forStmt, ok := prog.Main.Body.Items[1].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", prog.Main.Body.Items[1])
	}
	ifStmt, ok := forStmt.Body.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt for loop body, got %T", forStmt.Body)
	}
	if _, ok := ifStmt.Then.(*ast.BreakStmt); !ok {
		t.Fatalf("expected break statement, got %T", ifStmt.Then)
	}
}

func TestMissingSemicolonRecovers(t *testing.T) {
	prog, p := parseProgram(t, "int main(){return 0}")
	diags := p.Diagnostics().Sorted()
	if len(diags) != 1 || diags[0].Code != token.DiagMissingSemicolon {
		t.Fatalf("expected one MISSING_SEMICOLON diagnostic, got %v", diags)
	}
	if prog.Main == nil {
		t.Fatalf("expected parsing to continue and still produce main")
	}
}

func TestMissingRParenRecovers(t *testing.T) {
	_, p := parseProgram(t, "int main(){printf(\"%d\", 1; return 0;}")
	diags := p.Diagnostics().Sorted()
	found := false
	for _, d := range diags {
		if d.Code == token.DiagMissingBrace {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a MISSING_BRACE diagnostic, got %v", diags)
	}
}

func TestExpressionPrecedence(t *testing.T) {
	prog, _ := parseProgram(t, "int main(){return 2+3*4;}")
	ret := prog.Main.Body.Items[0].(*ast.ReturnStmt)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level '+', got %#v", ret.Value)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected nested '*' on the right, got %#v", bin.Right)
	}
}

func TestStringLiteralDecodesEscapes(t *testing.T) {
	prog, _ := parseProgram(t, `int main(){printf("a\nb"); return 0;}`)
	printfStmt := prog.Main.Body.Items[0].(*ast.PrintfStmt)
	if printfStmt.Format != "a\nb" {
		t.Fatalf("format = %q, want decoded escape", printfStmt.Format)
	}
}
