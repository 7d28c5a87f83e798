// Package astprint renders a parsed Program as an S-expression, for
// `blang parse`'s AST dump. Like internal/semantic and internal/irgen, it
// type-switches over the concrete ast node types rather than going
// through a visitor (ast.Node carries no Accept method, per spec.md's
// Design Notes).
package astprint

import (
	"fmt"
	"strings"

	"github.com/FyVoid/blang/internal/ast"
)

// Program renders prog as a single, indented S-expression.
func Program(prog *ast.Program) string {
	var sb strings.Builder
	sb.WriteString("(program\n")
	for _, it := range prog.Items {
		sb.WriteString(indent(item(it)))
		sb.WriteString("\n")
	}
	if prog.Main != nil {
		sb.WriteString(indent(funcDef(prog.Main)))
		sb.WriteString("\n")
	}
	sb.WriteString(")")
	return sb.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func item(n ast.Item) string {
	switch v := n.(type) {
	case *ast.Decl:
		return decl(v)
	case *ast.FuncDef:
		return funcDef(v)
	default:
		return fmt.Sprintf("(unknown-item %T)", n)
	}
}

func decl(d *ast.Decl) string {
	var sb strings.Builder
	kw := typeKeyword(d.Keyword)
	if d.Const {
		kw = "const " + kw
	}
	fmt.Fprintf(&sb, "(decl %s", kw)
	for _, def := range d.Defs {
		sb.WriteString(" ")
		sb.WriteString(defNode(def))
	}
	sb.WriteString(")")
	return sb.String()
}

func defNode(d *ast.Def) string {
	var sb strings.Builder
	if d.ArrLen != nil {
		fmt.Fprintf(&sb, "(def %s[%s]", d.Name, expr(d.ArrLen))
	} else {
		fmt.Fprintf(&sb, "(def %s", d.Name)
	}
	if d.Init != nil {
		sb.WriteString(" ")
		sb.WriteString(initNode(d.Init))
	}
	sb.WriteString(")")
	return sb.String()
}

func initNode(in ast.Init) string {
	switch v := in.(type) {
	case *ast.SingleInit:
		return fmt.Sprintf("(init %s)", expr(v.Value))
	case *ast.ListInit:
		parts := make([]string, len(v.Values))
		for i, e := range v.Values {
			parts[i] = expr(e)
		}
		return fmt.Sprintf("(init-list %s)", strings.Join(parts, " "))
	case *ast.StringInit:
		return fmt.Sprintf("(init-string %q)", v.Value)
	default:
		return fmt.Sprintf("(unknown-init %T)", in)
	}
}

func typeKeyword(k ast.TypeKeyword) string {
	switch k {
	case ast.TypeInt:
		return "int"
	case ast.TypeChar:
		return "char"
	default:
		return "void"
	}
}

func funcDef(f *ast.FuncDef) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(func %s %s (", typeKeyword(f.Keyword), f.Name)
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(" ")
		}
		if p.IsArray {
			fmt.Fprintf(&sb, "%s %s[]", typeKeyword(p.Keyword), p.Name)
		} else {
			fmt.Fprintf(&sb, "%s %s", typeKeyword(p.Keyword), p.Name)
		}
	}
	sb.WriteString(")\n")
	sb.WriteString(indent(block(f.Body)))
	sb.WriteString(")")
	return sb.String()
}

func block(b *ast.Block) string {
	var sb strings.Builder
	sb.WriteString("(block\n")
	for _, s := range b.Items {
		sb.WriteString(indent(stmt(s)))
		sb.WriteString("\n")
	}
	sb.WriteString(")")
	return sb.String()
}

func stmt(s ast.Stmt) string {
	switch v := s.(type) {
	case *ast.Decl:
		return decl(v)
	case *ast.Block:
		return block(v)
	case *ast.BlockStmt:
		return block(v.Body)
	case *ast.AssignStmt:
		return fmt.Sprintf("(assign %s %s)", lvalue(v.Target), expr(v.Rhs))
	case *ast.ExprStmt:
		return fmt.Sprintf("(expr-stmt %s)", expr(v.X))
	case *ast.IfStmt:
		if v.Else != nil {
			return fmt.Sprintf("(if %s\n%s\n%s)", expr(v.Cond), indent(stmt(v.Then)), indent(stmt(v.Else)))
		}
		return fmt.Sprintf("(if %s\n%s)", expr(v.Cond), indent(stmt(v.Then)))
	case *ast.ForStmt:
		init, cond, step := "()", "()", "()"
		if v.Init != nil {
			init = stmt(v.Init)
		}
		if v.Cond != nil {
			cond = expr(v.Cond)
		}
		if v.Step != nil {
			step = stmt(v.Step)
		}
		return fmt.Sprintf("(for %s %s %s\n%s)", init, cond, step, indent(stmt(v.Body)))
	case *ast.BreakStmt:
		return "(break)"
	case *ast.ContinueStmt:
		return "(continue)"
	case *ast.ReturnStmt:
		if v.Value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", expr(v.Value))
	case *ast.PrintfStmt:
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = expr(a)
		}
		if len(parts) == 0 {
			return fmt.Sprintf("(printf %q)", v.Format)
		}
		return fmt.Sprintf("(printf %q %s)", v.Format, strings.Join(parts, " "))
	default:
		return fmt.Sprintf("(unknown-stmt %T)", s)
	}
}

func lvalue(lv *ast.LValue) string {
	if lv.Index == nil {
		return lv.Name
	}
	return fmt.Sprintf("(index %s %s)", lv.Name, expr(lv.Index))
}

func expr(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", v.Op, expr(v.Left), expr(v.Right))
	case *ast.UnaryExpr:
		if v.IsCall() {
			parts := make([]string, len(v.Args))
			for i, a := range v.Args {
				parts[i] = expr(a)
			}
			if len(parts) == 0 {
				return fmt.Sprintf("(call %s)", v.Callee)
			}
			return fmt.Sprintf("(call %s %s)", v.Callee, strings.Join(parts, " "))
		}
		return fmt.Sprintf("(%s %s)", v.Op, expr(v.Operand))
	case *ast.ParenExpr:
		return fmt.Sprintf("(paren %s)", expr(v.Inner))
	case *ast.LValue:
		return lvalue(v)
	case *ast.IntLit:
		return fmt.Sprintf("%d", v.Value)
	case *ast.CharLit:
		return fmt.Sprintf("'%c'", v.Value)
	default:
		return fmt.Sprintf("(unknown-expr %T)", e)
	}
}
