// Package ast defines the syntax tree produced by the parser.
//
// Nodes are plain values: the parser builds them once and nothing mutates them afterwards.
package ast

import (
	"fmt"
	"strings"
)

// Dump returns the program as one parenthesized line per statement.
func (p Program) Dump() string {
	result := ""
	for _, stmt := range p.Statements {
		result += fmt.Sprintf("%s\n", DumpStmt(stmt))
	}
	return result
}

// DumpStmt renders a statement in prefix form, e.g. `(print (+ 1 2))`.
func DumpStmt(s Stmt) string {
	switch s := s.(type) {
	case ExpressionStmt:
		return fmt.Sprintf("(; %s)", Dump(s.Expression))
	case PrintStmt:
		return fmt.Sprintf("(print %s)", Dump(s.Expression))
	case nil:
		return "<nil>"
	default:
		panic(fmt.Errorf("unsupported statement type %T", s))
	}
}

// Dump renders an expression in prefix form, e.g. `(* (group (+ 1 2)) 3)`.
func Dump(e Expr) string {
	switch e := e.(type) {
	case LiteralExpr:
		if str, ok := e.Value.AsString(); ok {
			return fmt.Sprintf("%q", str)
		}
		return e.Value.String()
	case GroupingExpr:
		return parenthesize("group", e.Expression)
	case UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case TernaryExpr:
		return parenthesize("?:", e.Condition, e.Then, e.Else)
	case nil:
		return "<nil>"
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(" + name)
	for _, e := range exprs {
		b.WriteString(" " + Dump(e))
	}
	b.WriteString(")")
	return b.String()
}
