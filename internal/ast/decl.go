package ast

import "github.com/FyVoid/blang/internal/types"

// TypeKeyword names the three type keywords a declaration or function
// return type may spell (int/char/void).
type TypeKeyword int

const (
	TypeInt TypeKeyword = iota
	TypeChar
	TypeVoid
)

// ResolveKeyword maps a source-level type keyword to its interned type.
// Void is only valid as a function return type; callers enforce that.
func ResolveKeyword(k TypeKeyword) *types.Type {
	switch k {
	case TypeInt:
		return types.IntType()
	case TypeChar:
		return types.CharType()
	default:
		return types.VoidType()
	}
}

// Decl is one `[const] Type Def (',' Def)* ';'` top-level or block-level
// declaration.
type Decl struct {
	baseNode
	Keyword TypeKeyword
	Const   bool
	Defs    []*Def
}

func NewDecl(line int, kw TypeKeyword, isConst bool, defs []*Def) *Decl {
	return &Decl{baseNode: baseNode{line}, Keyword: kw, Const: isConst, Defs: defs}
}

func (d *Decl) itemNode() {}
func (d *Decl) stmtNode() {} // declarations are also valid block items

// Def is a single definition within a Decl: an identifier, an optional
// array-length expression, and an optional initializer.
type Def struct {
	baseNode
	Name    string
	ArrLen  Expr // nil if not an array
	Init    Init // nil if no initializer
}

func NewDef(line int, name string, arrLen Expr, init Init) *Def {
	return &Def{baseNode: baseNode{line}, Name: name, ArrLen: arrLen, Init: init}
}

// Init is the closed family of initializer variants: single expression,
// brace-list of expressions, or a string literal (char arrays only).
type Init interface {
	Node
	initNode()
}

// SingleInit is a plain `= exp` initializer.
type SingleInit struct {
	baseNode
	Value Expr
}

func NewSingleInit(line int, value Expr) *SingleInit {
	return &SingleInit{baseNode{line}, value}
}
func (i *SingleInit) initNode() {}

// ListInit is a brace-enclosed list of expressions: `= { e1, e2, ... }`.
type ListInit struct {
	baseNode
	Values []Expr
}

func NewListInit(line int, values []Expr) *ListInit {
	return &ListInit{baseNode{line}, values}
}
func (i *ListInit) initNode() {}

// StringInit is a string-literal initializer for a char array.
type StringInit struct {
	baseNode
	Value string // already escape-decoded
}

func NewStringInit(line int, value string) *StringInit {
	return &StringInit{baseNode{line}, value}
}
func (i *StringInit) initNode() {}

// Param is a single function formal parameter: a type plus identifier,
// where an array-typed parameter decays to a pointer parameter.
type Param struct {
	baseNode
	Keyword TypeKeyword
	IsArray bool // `int a[]` style pointer parameter
	Name    string
}

func NewParam(line int, kw TypeKeyword, isArray bool, name string) *Param {
	return &Param{baseNode{line}, kw, isArray, name}
}

// FuncDef is a function (or `main`) definition.
type FuncDef struct {
	baseNode
	Keyword TypeKeyword
	Name    string
	Params  []*Param
	Body    *Block
}

func NewFuncDef(line int, kw TypeKeyword, name string, params []*Param, body *Block) *FuncDef {
	return &FuncDef{baseNode{line}, kw, name, params, body}
}
func (f *FuncDef) itemNode() {}
