// Package parser turns a token stream into an ast.Program.
//
// Grammar, lowest to highest precedence:
//
//	program          := statement* EOF
//	statement        := "print" expression ";" | expression ";"
//	expression       := ternary_or_comma
//	ternary_or_comma := equality ( "," expression | "?" expression ":" expression )?
//	equality         := comparison ( ( "!=" | "==" ) comparison )*
//	comparison       := term ( ( "<" | "<=" | ">" | ">=" ) term )*
//	term             := factor ( ( "+" | "-" ) factor )*
//	factor           := unary ( ( "/" | "*" ) unary )*
//	unary            := ( "!" | "-" ) unary | primary
//	primary          := NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// A binary operator found where a left operand is expected is reported as
// "Expect expression before '<op>'." once its right operand has been parsed.
// Parsing stops at the first error.
package parser

import (
	"go.creack.net/lox/ast"
	"go.creack.net/lox/diagnostic"
	"go.creack.net/lox/lexer"
)

// Error is a parse failure tied to the offending token.
type Error struct {
	Token   lexer.Token
	Message string
}

func (e *Error) Error() string {
	return diagnostic.Format(e.Token.Line, diagnostic.Where(e.Token), e.Message)
}

type parser struct {
	tokens []lexer.Token
	pos    int

	curToken lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	stmtLookupTable         lookupTable[stmtHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
	missingLeftLookupTable  lookupTable[bool]
}

type Parser interface {
	// NextStatement returns the next statement, or nil once the input is exhausted.
	NextStatement() (ast.Stmt, error)
}

func newParser(tokens []lexer.Token) *parser {
	// The stream must end with EOF, close it if the caller did not.
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], lexer.Token{Type: lexer.TokEOF, Line: line})
	}
	p := &parser{
		tokens: tokens,

		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		stmtLookupTable:         lookupTable[stmtHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
		missingLeftLookupTable:  lookupTable[bool]{},
	}
	p.createTokenLookups()
	p.curToken = tokens[0]
	return p
}

// New returns a Parser reading statements from tokens one at a time.
func New(tokens []lexer.Token) Parser {
	return newParser(tokens)
}

// Parse parses the whole token stream. On error, no partial program is returned.
func Parse(tokens []lexer.Token) (ast.Program, error) {
	var stmts []ast.Stmt

	p := newParser(tokens)
	for {
		stmt, err := p.NextStatement()
		if err != nil {
			return ast.Program{}, err
		}
		if stmt == nil {
			break
		}
		stmts = append(stmts, stmt)
	}

	return ast.Program{Statements: stmts}, nil
}

func (p *parser) NextStatement() (ast.Stmt, error) {
	if p.curToken.Type == lexer.TokEOF {
		return nil, nil
	}
	return parseStmt(p)
}

func (p *parser) nextToken() lexer.Token {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	return p.curToken
}

// expect consumes the current token if it is of the expected type.
func (p *parser) expect(kind lexer.TokenType, message string) (lexer.Token, error) {
	if p.curToken.Type != kind {
		return p.curToken, p.errorAt(p.curToken, message)
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}

func (p *parser) errorAt(tok lexer.Token, message string) error {
	return &Error{Token: tok, Message: message}
}
