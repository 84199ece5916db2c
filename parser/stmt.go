package parser

import (
	"go.creack.net/lox/ast"
	"go.creack.net/lox/lexer"
)

func parseStmt(p *parser) (ast.Stmt, error) {
	stmtFn, exists := p.stmtLookupTable[p.curToken.Type]
	if exists {
		return stmtFn(p)
	}

	expression, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}

	return ast.ExpressionStmt{
		Expression: expression,
	}, nil
}

func parsePrintStmt(p *parser) (ast.Stmt, error) {
	p.nextToken() // Consume 'print'.
	expression, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.PrintStmt{Expression: expression}, nil
}
