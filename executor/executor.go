// Package executor walks an ast.Program and evaluates it.
package executor

import (
	"errors"
	"fmt"
	"io"

	"go.creack.net/lox/ast"
	"go.creack.net/lox/diagnostic"
	"go.creack.net/lox/lexer"
	"go.creack.net/lox/value"
)

// RuntimeError is an operator applied to operands it does not support.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return diagnostic.Format(e.Token.Line, diagnostic.Where(e.Token), e.Message)
}

func runtimeError(tok lexer.Token, message string) error {
	return &RuntimeError{Token: tok, Message: message}
}

// Execute runs the statements in order and stops at the first failure.
// Runtime errors are reported to sink, when not nil, before being returned.
func Execute(prog ast.Program, stdout io.Writer, sink diagnostic.Sink) error {
	for _, stmt := range prog.Statements {
		if err := executeStmt(stmt, stdout); err != nil {
			var rerr *RuntimeError
			if sink != nil && errors.As(err, &rerr) {
				sink.ReportToken(rerr.Token, rerr.Message)
			}
			return err
		}
	}
	return nil
}

func executeStmt(stmt ast.Stmt, stdout io.Writer) error {
	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		_, err := Evaluate(s.Expression)
		return err
	case ast.PrintStmt:
		v, err := Evaluate(s.Expression)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, v.String()); err != nil {
			return fmt.Errorf("print: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported statement type %T", s)
	}
}

// Evaluate computes the value of an expression.
func Evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case ast.LiteralExpr:
		return e.Value, nil
	case ast.GroupingExpr:
		return Evaluate(e.Expression)
	case ast.UnaryExpr:
		return evaluateUnary(e)
	case ast.BinaryExpr:
		return evaluateBinary(e)
	case ast.TernaryExpr:
		return evaluateTernary(e)
	default:
		return value.Nil, fmt.Errorf("unsupported expression type %T", e)
	}
}

func evaluateUnary(e ast.UnaryExpr) (value.Value, error) {
	right, err := Evaluate(e.Right)
	if err != nil {
		return value.Nil, err
	}

	switch e.Operator.Type {
	case lexer.TokMinus:
		n, ok := right.AsNumber()
		if !ok {
			return value.Nil, runtimeError(e.Operator, "Operand must be a number.")
		}
		return value.Number(-n), nil
	case lexer.TokBang:
		return value.Bool(!right.Truthy()), nil
	}
	return value.Nil, runtimeError(e.Operator, fmt.Sprintf("Unsupported unary operator '%s'.", e.Operator.Lexeme))
}

func evaluateBinary(e ast.BinaryExpr) (value.Value, error) {
	// Both operands are evaluated, left first, before looking at the operator.
	left, err := Evaluate(e.Left)
	if err != nil {
		return value.Nil, err
	}
	right, err := Evaluate(e.Right)
	if err != nil {
		return value.Nil, err
	}

	op := e.Operator
	switch op.Type {
	case lexer.TokComma:
		return right, nil
	case lexer.TokEqualEqual:
		return value.Bool(left.Equal(right)), nil
	case lexer.TokBangEqual:
		return value.Bool(!left.Equal(right)), nil
	case lexer.TokPlus:
		return add(op, left, right)
	}

	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return value.Nil, err
	}
	switch op.Type {
	case lexer.TokMinus:
		return value.Number(l - r), nil
	case lexer.TokStar:
		return value.Number(l * r), nil
	case lexer.TokSlash:
		if r == 0 {
			return value.Nil, runtimeError(op, "Division by 0.")
		}
		return value.Number(l / r), nil
	case lexer.TokLess:
		return value.Bool(l < r), nil
	case lexer.TokLessEqual:
		return value.Bool(l <= r), nil
	case lexer.TokGreater:
		return value.Bool(l > r), nil
	case lexer.TokGreaterEqual:
		return value.Bool(l >= r), nil
	}
	return value.Nil, runtimeError(op, fmt.Sprintf("Unsupported binary operator '%s'.", op.Lexeme))
}

// add sums numbers and concatenates strings. A number next to a string is
// converted with its canonical rendering.
func add(op lexer.Token, left, right value.Value) (value.Value, error) {
	switch {
	case left.Kind == value.KindNumber && right.Kind == value.KindNumber:
		l, _ := left.AsNumber()
		r, _ := right.AsNumber()
		return value.Number(l + r), nil
	case left.Kind == value.KindString && right.Kind == value.KindString,
		left.Kind == value.KindString && right.Kind == value.KindNumber,
		left.Kind == value.KindNumber && right.Kind == value.KindString:
		return value.String(left.String() + right.String()), nil
	}
	return value.Nil, runtimeError(op, "Operands must be two numbers or two strings.")
}

func numberOperands(op lexer.Token, left, right value.Value) (float64, float64, error) {
	l, lok := left.AsNumber()
	r, rok := right.AsNumber()
	if !lok || !rok {
		return 0, 0, runtimeError(op, "Operands must be numbers.")
	}
	return l, r, nil
}

// evaluateTernary only evaluates the selected branch.
func evaluateTernary(e ast.TernaryExpr) (value.Value, error) {
	cond, err := Evaluate(e.Condition)
	if err != nil {
		return value.Nil, err
	}
	b, ok := cond.AsBool()
	if !ok {
		return value.Nil, runtimeError(e.Question, "Condition must be a boolean.")
	}
	if b {
		return Evaluate(e.Then)
	}
	return Evaluate(e.Else)
}
