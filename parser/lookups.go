package parser

import (
	"go.creack.net/lox/ast"
	"go.creack.net/lox/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpSequence
	bpEquality
	bpComparison
	bpTerm
	bpFactor
	bpUnary
)

type stmtHandler func(*parser) (ast.Stmt, error)
type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

// missingLeft registers the error production for a binary operator found without left operand.
func (p *parser) missingLeft(kind lexer.TokenType) {
	p.nud(kind, parseMissingOperandExpr)
	p.missingLeftLookupTable[kind] = true
}

func (p *parser) stmt(kind lexer.TokenType, fn stmtHandler) {
	if _, ok := p.stmtLookupTable[kind]; ok {
		panic("duplicate stmt handler")
	}
	p.stmtLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bpDefault
}

func (p *parser) createTokenLookups() {
	// Sequence & conditional, both right associative.
	p.led(lexer.TokComma, bpSequence, parseSequenceExpr)
	p.led(lexer.TokQuestion, bpSequence, parseTernaryExpr)

	// Equality & comparison.
	p.led(lexer.TokBangEqual, bpEquality, parseBinaryExpr)
	p.led(lexer.TokEqualEqual, bpEquality, parseBinaryExpr)
	p.led(lexer.TokLess, bpComparison, parseBinaryExpr)
	p.led(lexer.TokLessEqual, bpComparison, parseBinaryExpr)
	p.led(lexer.TokGreater, bpComparison, parseBinaryExpr)
	p.led(lexer.TokGreaterEqual, bpComparison, parseBinaryExpr)

	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpTerm, parseBinaryExpr)
	p.led(lexer.TokMinus, bpTerm, parseBinaryExpr)
	p.led(lexer.TokStar, bpFactor, parseBinaryExpr)
	p.led(lexer.TokSlash, bpFactor, parseBinaryExpr)

	// Binary operators without left operand. '-' is excluded, it is a valid prefix.
	for _, kind := range []lexer.TokenType{
		lexer.TokComma, lexer.TokQuestion,
		lexer.TokBangEqual, lexer.TokEqualEqual,
		lexer.TokLess, lexer.TokLessEqual, lexer.TokGreater, lexer.TokGreaterEqual,
		lexer.TokPlus,
		lexer.TokStar, lexer.TokSlash,
	} {
		p.missingLeft(kind)
	}

	// Literals & prefixes.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokString, parsePrimaryExpr)
	p.nud(lexer.TokTrue, parsePrimaryExpr)
	p.nud(lexer.TokFalse, parsePrimaryExpr)
	p.nud(lexer.TokNil, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokMinus, parsePrefixExpr)
	p.nud(lexer.TokBang, parsePrefixExpr)

	// Statements.
	p.stmt(lexer.TokPrint, parsePrintStmt)
}
