package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.creack.net/lox/lexer"
	"go.creack.net/lox/value"
)

func op(tt lexer.TokenType, lexeme string) lexer.Token {
	return lexer.Token{Type: tt, Lexeme: lexeme, Line: 1}
}

func num(n float64) LiteralExpr { return LiteralExpr{Value: value.Number(n)} }

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "number", expr: num(1.5), want: "1.5"},
		{name: "string", expr: LiteralExpr{Value: value.String("a b")}, want: `"a b"`},
		{name: "nil", expr: LiteralExpr{Value: value.Nil}, want: "nil"},
		{name: "bool", expr: LiteralExpr{Value: value.True}, want: "true"},
		{
			name: "nested",
			expr: BinaryExpr{
				Left:     GroupingExpr{Expression: BinaryExpr{Left: num(1), Operator: op(lexer.TokPlus, "+"), Right: num(2)}},
				Operator: op(lexer.TokStar, "*"),
				Right:    UnaryExpr{Operator: op(lexer.TokMinus, "-"), Right: num(3)},
			},
			want: "(* (group (+ 1 2)) (- 3))",
		},
		{
			name: "ternary",
			expr: TernaryExpr{
				Condition: LiteralExpr{Value: value.True},
				Question:  op(lexer.TokQuestion, "?"),
				Then:      num(1),
				Else:      num(2),
			},
			want: "(?: true 1 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dump(tt.expr))
		})
	}
}

func TestProgramDump(t *testing.T) {
	prog := Program{Statements: []Stmt{
		PrintStmt{Expression: num(1)},
		ExpressionStmt{Expression: BinaryExpr{Left: num(1), Operator: op(lexer.TokComma, ","), Right: num(2)}},
	}}
	assert.Equal(t, "(print 1)\n(; (, 1 2))\n", prog.Dump())
}
