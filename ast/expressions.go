package ast

import (
	"go.creack.net/lox/lexer"
	"go.creack.net/lox/value"
)

// Expr is the closed set of expression nodes.
type Expr interface {
	expr()
}

type LiteralExpr struct {
	Value value.Value
}

func (LiteralExpr) expr() {}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Expression Expr
}

func (GroupingExpr) expr() {}

// UnaryExpr is a prefix '-' or '!'.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (UnaryExpr) expr() {}

// BinaryExpr covers arithmetic, comparison, equality and the ',' sequence operator.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (BinaryExpr) expr() {}

// TernaryExpr is `Condition ? Then : Else`. Question is kept for diagnostics.
type TernaryExpr struct {
	Condition Expr
	Question  lexer.Token
	Then      Expr
	Else      Expr
}

func (TernaryExpr) expr() {}
