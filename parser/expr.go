package parser

import (
	"fmt"

	"go.creack.net/lox/ast"
	"go.creack.net/lox/lexer"
	"go.creack.net/lox/value"
)

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.errorAt(p.curToken, "Expect expression.")
	}
	// An operator without left operand is only diagnosed as such where it could have been parsed as infix.
	if p.missingLeftLookupTable[p.curToken.Type] && p.bindingPowerLookupTable[p.curToken.Type] <= bp {
		return nil, p.errorAt(p.curToken, "Expect expression.")
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn, exists := p.ledLookupTable[p.curToken.Type]
		if !exists {
			return nil, p.errorAt(p.curToken, "Expect expression.")
		}
		if left, err = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type]); err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.curToken
	var val value.Value
	switch tok.Type {
	case lexer.TokNumber:
		n, ok := tok.Literal.(float64)
		if !ok {
			return nil, p.errorAt(tok, "Invalid number literal.")
		}
		val = value.Number(n)
	case lexer.TokString:
		s, ok := tok.Literal.(string)
		if !ok {
			return nil, p.errorAt(tok, "Invalid string literal.")
		}
		val = value.String(s)
	case lexer.TokTrue:
		val = value.True
	case lexer.TokFalse:
		val = value.False
	case lexer.TokNil:
		val = value.Nil
	default:
		return nil, p.errorAt(tok, "Expect expression.")
	}
	p.nextToken()
	return ast.LiteralExpr{Value: val}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.nextToken() // Consume '('.
	inner, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokParenRight, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return ast.GroupingExpr{Expression: inner}, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bpUnary)
	if err != nil {
		return nil, err
	}
	return ast.UnaryExpr{
		Operator: operator,
		Right:    right,
	}, nil
}

// parseMissingOperandExpr handles a binary operator in prefix position. The right operand
// is parsed and discarded so that the error points at the operator.
func parseMissingOperandExpr(p *parser) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	if _, err := parseExpr(p, p.bindingPowerLookupTable[operator.Type]); err != nil {
		return nil, err
	}
	return nil, p.errorAt(operator, fmt.Sprintf("Expect expression before '%s'.", operator.Lexeme))
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

// parseSequenceExpr parses `left , expression`. The right side is a full
// expression, which makes ',' right associative.
func parseSequenceExpr(p *parser, left ast.Expr, _ bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

// parseTernaryExpr parses `cond ? expression : expression`.
func parseTernaryExpr(p *parser, cond ast.Expr, _ bindingPower) (ast.Expr, error) {
	question := p.curToken
	p.nextToken()
	thenBranch, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokColon, "Expect ':' after expression."); err != nil {
		return nil, err
	}
	elseBranch, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	return ast.TernaryExpr{
		Condition: cond,
		Question:  question,
		Then:      thenBranch,
		Else:      elseBranch,
	}, nil
}
