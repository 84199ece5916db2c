// Package lexer provides the lexical analyzer feeding the Lox parser.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const digits = "0123456789"
const identifierChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_" + digits

// ErrSyntax is returned by Scan when at least one lexical error was reported.
var ErrSyntax = errors.New("lexical error")

// Reporter receives lexical diagnostics.
type Reporter interface {
	ReportLine(line int, message string)
}

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
	line  int // Current line in input.

	reporter Reporter
	errCount int
}

// New creates a new Lexer for the given input.
// Errors are sent to reporter when not nil.
func New(input string, reporter Reporter) *Lexer {
	return &Lexer{
		input:    input,
		line:     1,
		reporter: reporter,
	}
}

// Scan tokenizes the whole input. The returned slice always ends with a TokEOF token,
// even when lexical errors were reported.
func Scan(input string, reporter Reporter) ([]Token, error) {
	l := New(input, reporter)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			break
		}
	}
	if l.errCount > 0 {
		return tokens, fmt.Errorf("%w: %d reported", ErrSyntax, l.errCount)
	}
	return tokens, nil
}

// NextToken returns the next token of the input. Once the end is reached,
// it keeps returning TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Line: l.line}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// ErrorCount returns the number of lexical errors reported so far.
func (l *Lexer) ErrorCount() int { return l.errCount }

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	r, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	if r == '\n' {
		l.line--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// peekNext looks one rune past peek, without consuming anything.
func (l *Lexer) peekNext() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	_, n := utf8.DecodeRuneInString(l.input[l.pos:])
	if l.pos+n >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+n:])
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType, literal any) Token {
	t := Token{
		Type:    tt,
		Lexeme:  l.input[l.start:l.pos],
		Literal: literal,
		Line:    l.line,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt, nil))
}

func (l *Lexer) emitLiteral(tt TokenType, literal any) stateFn {
	return l.emitToken(l.thisToken(tt, literal))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// errorf reports a lexical error and resumes scanning after the offending input.
func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.errCount++
	if l.reporter != nil {
		l.reporter.ReportLine(l.line, fmt.Sprintf(format, args...))
	}
	l.ignore()
	return lexText
}
