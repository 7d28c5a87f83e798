package irgen

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/types"
)

// genBlock lowers every item of b in scope.
func (g *Generator) genBlock(b *ast.Block, scope *symbols.Scope) {
	for _, item := range b.Items {
		g.genStmt(item, scope)
	}
}

func (g *Generator) genStmt(s ast.Stmt, scope *symbols.Scope) {
	switch x := s.(type) {
	case *ast.Decl:
		g.genLocalDecl(x, scope)
	case *ast.AssignStmt:
		g.genAssign(x, scope)
	case *ast.ExprStmt:
		g.lowerExpr(x.X, scope)
	case *ast.BlockStmt:
		child := g.env.NewChild(scope)
		g.genBlock(x.Body, child)
	case *ast.IfStmt:
		g.genIf(x, scope)
	case *ast.ForStmt:
		g.genFor(x, scope)
	case *ast.BreakStmt:
		g.genBreak()
	case *ast.ContinueStmt:
		g.genContinue()
	case *ast.ReturnStmt:
		g.genReturn(x, scope)
	case *ast.PrintfStmt:
		g.genPrintf(x, scope)
	}
}

func (g *Generator) genAssign(s *ast.AssignStmt, scope *symbols.Scope) {
	addr, elemType := g.lvalueAddr(s.Target, scope)
	if isInputRead(s.Rhs) {
		val := g.lowerInputRead(s.Rhs.(*ast.UnaryExpr))
		g.fn.Current().Store(g.convertTo(val, elemType), addr)
		return
	}
	val := g.convertTo(g.lowerExpr(s.Rhs, scope), elemType)
	g.fn.Current().Store(val, addr)
}

// genIf lowers `if(cond) then [else els]` as entry->cond->body-or-end,
// always allocating a join block (spec.md §4.10).
func (g *Generator) genIf(s *ast.IfStmt, scope *symbols.Scope) {
	prev := g.fn.Current()
	condBlock := g.mod.NewBlock(g.fn, "if_cond")
	prev.Br(condBlock.Label)

	g.fn.SetCurrent(condBlock)
	condVal := g.toBool(g.lowerExpr(s.Cond, scope))
	condTail := g.fn.Current()

	thenBlock := g.mod.NewBlock(g.fn, "if_then")
	var elseBlock *ir.BasicBlock
	if s.Else != nil {
		elseBlock = g.mod.NewBlock(g.fn, "if_else")
	}
	endBlock := g.mod.NewBlock(g.fn, "if_end")

	falseLabel := endBlock.Label
	if elseBlock != nil {
		falseLabel = elseBlock.Label
	}
	condTail.CondBr(condVal, thenBlock.Label, falseLabel)

	g.fn.SetCurrent(thenBlock)
	g.genStmt(s.Then, scope)
	g.fn.Current().Br(endBlock.Label)

	if elseBlock != nil {
		g.fn.SetCurrent(elseBlock)
		g.genStmt(s.Else, scope)
		g.fn.Current().Br(endBlock.Label)
	}

	g.fn.SetCurrent(endBlock)
}

// genFor lowers C-style `for(init;cond;step) body` as
// entry->cond->body->step->cond...->end (spec.md §4.10). break targets
// end; continue targets step.
func (g *Generator) genFor(s *ast.ForStmt, scope *symbols.Scope) {
	if s.Init != nil {
		g.genStmt(s.Init, scope)
	}
	prev := g.fn.Current()

	condBlock := g.mod.NewBlock(g.fn, "for_cond")
	prev.Br(condBlock.Label)

	g.fn.SetCurrent(condBlock)
	var condVal ir.Value
	if s.Cond != nil {
		condVal = g.toBool(g.lowerExpr(s.Cond, scope))
	} else {
		condVal = ir.ConstBool(true)
	}
	condTail := g.fn.Current()

	bodyBlock := g.mod.NewBlock(g.fn, "for_body")
	stepBlock := g.mod.NewBlock(g.fn, "for_step")
	endBlock := g.mod.NewBlock(g.fn, "for_end")
	condTail.CondBr(condVal, bodyBlock.Label, endBlock.Label)

	g.loops = append(g.loops, loopLabels{Step: stepBlock.Label, End: endBlock.Label})

	g.fn.SetCurrent(bodyBlock)
	g.genStmt(s.Body, scope)
	g.fn.Current().Br(stepBlock.Label)

	g.fn.SetCurrent(stepBlock)
	if s.Step != nil {
		g.genStmt(s.Step, scope)
	}
	g.fn.Current().Br(condBlock.Label)

	g.loops = g.loops[:len(g.loops)-1]
	g.fn.SetCurrent(endBlock)
}

func (g *Generator) genBreak() {
	if len(g.loops) == 0 {
		return
	}
	g.fn.Current().Br(g.loops[len(g.loops)-1].End)
}

func (g *Generator) genContinue() {
	if len(g.loops) == 0 {
		return
	}
	g.fn.Current().Br(g.loops[len(g.loops)-1].Step)
}

func (g *Generator) genReturn(s *ast.ReturnStmt, scope *symbols.Scope) {
	if s.Value == nil {
		g.fn.Current().Ret(nil)
		return
	}
	val := g.convertTo(g.lowerExpr(s.Value, scope), g.curRet)
	g.fn.Current().Ret(&val)
}

// genPrintf scans the format string, materializing literal runs as
// putstr(i8*) calls and dispatching %d/%c to putint/putchar (spec.md
// §4.10).
func (g *Generator) genPrintf(s *ast.PrintfStmt, scope *symbols.Scope) {
	argIdx := 0
	var literal []byte
	flush := func() {
		if len(literal) == 0 {
			return
		}
		g.emitPutstr(literal)
		literal = nil
	}

	f := s.Format
	for i := 0; i < len(f); i++ {
		if f[i] == '%' && i+1 < len(f) && (f[i+1] == 'd' || f[i+1] == 'c') {
			flush()
			var arg ast.Expr
			if argIdx < len(s.Args) {
				arg = s.Args[argIdx]
				argIdx++
			}
			if f[i+1] == 'd' {
				g.emitPutint(arg, scope)
			} else {
				g.emitPutchar(arg, scope)
			}
			i++
			continue
		}
		literal = append(literal, f[i])
	}
	flush()
}

func (g *Generator) emitPutint(arg ast.Expr, scope *symbols.Scope) {
	if arg == nil {
		return
	}
	v := g.toI32(g.lowerExpr(arg, scope))
	g.fn.Current().Call("", types.VoidType(), "putint", true, []ir.Value{v})
}

// emitPutchar reproduces spec.md §4.10's historical shape verbatim: the
// %c argument is truncated to i8 then immediately sign-extended back to
// i32 before the call.
func (g *Generator) emitPutchar(arg ast.Expr, scope *symbols.Scope) {
	if arg == nil {
		return
	}
	v32 := g.toI32(g.lowerExpr(arg, scope))
	truncDest := g.fn.FreshReg()
	i8 := g.fn.Current().Cast(ir.OpTrunc, truncDest, v32, types.CharType())
	dest := g.fn.FreshReg()
	i32 := g.fn.Current().Cast(ir.OpSExt, dest, i8, types.IntType())
	g.fn.Current().Call("", types.VoidType(), "putchar", true, []ir.Value{i32})
}

func (g *Generator) emitPutstr(lit []byte) {
	n := len(lit) + 1
	arrType := types.NewArray(types.CharType(), n)
	dest := g.fn.FreshReg()
	ptr := g.fn.Current().Alloca(dest, arrType)

	for i, c := range lit {
		g.storeElement(ptr, arrType, types.CharType(), i, ir.ConstChar(c))
	}
	g.storeElement(ptr, arrType, types.CharType(), len(lit), ir.ConstChar(0))

	firstDest := g.fn.FreshReg()
	first := g.fn.Current().GEP(firstDest, arrType, ptr, []ir.Value{ir.ConstInt(0), ir.ConstInt(0)}, types.CharType())
	g.fn.Current().Call("", types.VoidType(), "putstr", true, []ir.Value{first})
}
