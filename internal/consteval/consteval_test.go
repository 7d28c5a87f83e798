package consteval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/types"
)

func TestEvalArithmetic(t *testing.T) {
	// (2 + 3) * 4 - 1
	expr := ast.NewBinaryExpr(1, "-",
		ast.NewBinaryExpr(1, "*",
			ast.NewParenExpr(1, ast.NewBinaryExpr(1, "+", ast.NewIntLit(1, 2), ast.NewIntLit(1, 3))),
			ast.NewIntLit(1, 4)),
		ast.NewIntLit(1, 1))

	v, ok := Eval(expr, symbols.NewEnv().Global())
	require.True(t, ok)
	require.Equal(t, int32(19), v)
}

func TestEvalConstVarRef(t *testing.T) {
	env := symbols.NewEnv()
	env.Global().DefineVar(&symbols.Variable{
		Name: "N", Type: types.IntType(), Const: true, HasValue: true, Scalar: 10,
	})
	expr := ast.NewBinaryExpr(1, "+", ast.NewLValue(1, "N", nil), ast.NewIntLit(1, 5))
	v, ok := Eval(expr, env.Global())
	require.True(t, ok)
	require.Equal(t, int32(15), v)
}

func TestEvalConstArrayIndex(t *testing.T) {
	env := symbols.NewEnv()
	env.Global().DefineVar(&symbols.Variable{
		Name: "A", Type: types.NewArray(types.IntType(), 3), Const: true, HasValue: true,
		Array: []int32{7, 8, 9},
	})
	expr := ast.NewLValue(1, "A", ast.NewIntLit(1, 2))
	v, ok := Eval(expr, env.Global())
	require.True(t, ok)
	require.Equal(t, int32(9), v)
}

func TestEvalLogicalAndNot(t *testing.T) {
	expr := ast.NewUnaryOp(1, "!", ast.NewBinaryExpr(1, "&&", ast.NewIntLit(1, 1), ast.NewIntLit(1, 0)))
	v, ok := Eval(expr, symbols.NewEnv().Global())
	require.True(t, ok)
	require.Equal(t, int32(1), v)
}

func TestEvalFailureCases(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		env  func() *symbols.Scope
	}{
		{
			name: "non-const variable",
			expr: ast.NewLValue(1, "x", nil),
			env: func() *symbols.Scope {
				env := symbols.NewEnv()
				env.Global().DefineVar(&symbols.Variable{Name: "x", Type: types.IntType(), Const: false})
				return env.Global()
			},
		},
		{
			name: "call is never constant",
			expr: ast.NewCallExpr(1, "f", nil),
			env:  func() *symbols.Scope { return symbols.NewEnv().Global() },
		},
		{
			name: "division by zero",
			expr: ast.NewBinaryExpr(1, "/", ast.NewIntLit(1, 1), ast.NewIntLit(1, 0)),
			env:  func() *symbols.Scope { return symbols.NewEnv().Global() },
		},
		{
			name: "whole-array reference is not scalar",
			expr: ast.NewLValue(1, "A", nil),
			env: func() *symbols.Scope {
				env := symbols.NewEnv()
				env.Global().DefineVar(&symbols.Variable{
					Name: "A", Type: types.NewArray(types.IntType(), 2), Const: true, HasValue: true,
					Array: []int32{1, 2},
				})
				return env.Global()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Eval(tt.expr, tt.env())
			require.False(t, ok)
			require.Equal(t, int32(-1), v)
		})
	}
}
