package lexer

import "fmt"

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota // Zero value, never emitted.
	TokEOF

	// Single-character tokens.
	TokParenLeft
	TokParenRight
	TokBraceLeft
	TokBraceRight
	TokComma
	TokDot
	TokMinus
	TokPlus
	TokSemicolon
	TokSlash
	TokStar
	TokQuestion
	TokColon

	// One or two character tokens.
	TokBang
	TokBangEqual
	TokEqual
	TokEqualEqual
	TokGreater
	TokGreaterEqual
	TokLess
	TokLessEqual

	// Identifiers + literals.
	TokIdentifier
	TokString
	TokNumber

	// Keywords.
	TokAnd
	TokClass
	TokElse
	TokFalse
	TokFor
	TokFun
	TokIf
	TokNil
	TokOr
	TokPrint
	TokReturn
	TokSuper
	TokThis
	TokTrue
	TokVar
	TokWhile

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
	TokBraceLeft:  "BRACE_LEFT",
	TokBraceRight: "BRACE_RIGHT",
	TokComma:      "COMMA",
	TokDot:        "DOT",
	TokMinus:      "MINUS",
	TokPlus:       "PLUS",
	TokSemicolon:  "SEMICOLON",
	TokSlash:      "SLASH",
	TokStar:       "STAR",
	TokQuestion:   "QUESTION",
	TokColon:      "COLON",

	TokBang:         "BANG",
	TokBangEqual:    "BANG_EQUAL",
	TokEqual:        "EQUAL",
	TokEqualEqual:   "EQUAL_EQUAL",
	TokGreater:      "GREATER",
	TokGreaterEqual: "GREATER_EQUAL",
	TokLess:         "LESS",
	TokLessEqual:    "LESS_EQUAL",

	TokIdentifier: "IDENTIFIER",
	TokString:     "STRING",
	TokNumber:     "NUMBER",

	TokAnd:    "AND",
	TokClass:  "CLASS",
	TokElse:   "ELSE",
	TokFalse:  "FALSE",
	TokFor:    "FOR",
	TokFun:    "FUN",
	TokIf:     "IF",
	TokNil:    "NIL",
	TokOr:     "OR",
	TokPrint:  "PRINT",
	TokReturn: "RETURN",
	TokSuper:  "SUPER",
	TokThis:   "THIS",
	TokTrue:   "TRUE",
	TokVar:    "VAR",
	TokWhile:  "WHILE",
}

var keywords = map[string]TokenType{
	"and":    TokAnd,
	"class":  TokClass,
	"else":   TokElse,
	"false":  TokFalse,
	"for":    TokFor,
	"fun":    TokFun,
	"if":     TokIf,
	"nil":    TokNil,
	"or":     TokOr,
	"print":  TokPrint,
	"return": TokReturn,
	"super":  TokSuper,
	"this":   TokThis,
	"true":   TokTrue,
	"var":    TokVar,
	"while":  TokWhile,
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string // Raw source text, empty for EOF.
	Literal any    // float64 for numbers, string for strings, nil otherwise.
	Line    int
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Literal != nil:
		return fmt.Sprintf("%s[%d]: %q (%v)", t.Type, t.Line, t.Lexeme, t.Literal)
	case len(t.Lexeme) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Line, t.Lexeme)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Line, t.Lexeme)
}
