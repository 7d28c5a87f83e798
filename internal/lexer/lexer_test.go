package lexer

import (
	"testing"

	"github.com/FyVoid/blang/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `int x = 3 + 4 * (2 - 1);`

	tests := []struct {
		wantType token.Type
		wantLit  string
	}{
		{token.INT_KW, "int"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "3"},
		{token.PLUS, "+"},
		{token.INT, "4"},
		{token.STAR, "*"},
		{token.LPAREN, "("},
		{token.INT, "2"},
		{token.MINUS, "-"},
		{token.INT, "1"},
		{token.RPAREN, ")"},
		{token.SEMI, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, tt.wantType)
		}
		if tok.Literal != tt.wantLit {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLit)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "int char void const if else for break continue return printf getint getchar main"
	want := []token.Type{
		token.INT_KW, token.CHAR_KW, token.VOID, token.CONST, token.IF, token.ELSE,
		token.FOR, token.BREAK, token.CONTINUE, token.RETURN, token.PRINTF,
		token.GETINT, token.GETCHAR, token.MAIN,
	}
	l := New(input)
	for i, want := range want {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	input := "== != >= <= && ||"
	want := []token.Type{token.EQ, token.NE, token.GE, token.LE, token.LAND, token.LOR}
	l := New(input)
	for i, want := range want {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token %d: got %s (%q), want %s", i, tok.Type, tok.Literal, want)
		}
	}
}

func TestMalformedAmpersandStillLexesAsLand(t *testing.T) {
	l := New("a & b")
	_ = l.NextToken() // a
	tok := l.NextToken()
	if tok.Type != token.LAND {
		t.Fatalf("got %s, want LAND", tok.Type)
	}
	ops := l.MalformedLogicalOps()
	if len(ops) != 1 || ops[0].Op != '&' {
		t.Fatalf("malformed ops = %+v, want one '&' entry", ops)
	}
}

func TestMalformedPipeStillLexesAsLor(t *testing.T) {
	l := New("a | b")
	_ = l.NextToken()
	tok := l.NextToken()
	if tok.Type != token.LOR {
		t.Fatalf("got %s, want LOR", tok.Type)
	}
	ops := l.MalformedLogicalOps()
	if len(ops) != 1 || ops[0].Op != '|' {
		t.Fatalf("malformed ops = %+v, want one '|' entry", ops)
	}
}

func TestLineCounting(t *testing.T) {
	l := New("int a;\nint b;\r\nint c;")
	var lines []int
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.IDENT {
			lines = append(lines, tok.Pos.Line)
		}
	}
	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("got %d identifiers, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("ident %d: line = %d, want %d", i, lines[i], w)
		}
	}
}

func TestLineComment(t *testing.T) {
	l := New("int a; // trailing comment\nint b;")
	var kinds []token.Type
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	if kinds[0] != token.INT_KW {
		t.Fatalf("unexpected lead token: %s", kinds[0])
	}
}

func TestBlockComment(t *testing.T) {
	l := New("int /* skip \n this */ a;")
	tok := l.NextToken()
	if tok.Type != token.INT_KW {
		t.Fatalf("got %s, want int", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "a" {
		t.Fatalf("got %s %q, want IDENT a", tok.Type, tok.Literal)
	}
}

func TestCharLiteralRaw(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`'a'`, "a"},
		{`'\n'`, `\n`},
		{`'\t'`, `\t`},
		{`'\\'`, `\\`},
		{`'\''`, `\'`},
		{`'\0'`, `\0`},
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok := l.NextToken()
		if tok.Type != token.CHAR {
			t.Fatalf("src %q: got %s, want CHAR", tt.src, tok.Type)
		}
		if tok.Literal != tt.want {
			t.Errorf("src %q: literal = %q, want %q", tt.src, tok.Literal, tt.want)
		}
	}
}

func TestStringLiteralRaw(t *testing.T) {
	l := New(`"hello\nworld"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	if tok.Literal != `hello\nworld` {
		t.Errorf("literal = %q", tok.Literal)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New("int a = 1;")
	_ = l.NextToken() // int
	saved := l.SaveState()
	first := l.NextToken() // a
	l.RestoreState(saved)
	second := l.NextToken()
	if first != second {
		t.Fatalf("restore mismatch: %v != %v", first, second)
	}
}
