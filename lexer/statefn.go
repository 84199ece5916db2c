package lexer

import (
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'(': TokParenLeft,
	')': TokParenRight,
	'{': TokBraceLeft,
	'}': TokBraceRight,
	',': TokComma,
	'.': TokDot,
	'-': TokMinus,
	'+': TokPlus,
	';': TokSemicolon,
	'*': TokStar,
	'?': TokQuestion,
	':': TokColon,
}

// Runes optionally followed by '=', with their single and double forms.
var withEqual = map[rune][2]TokenType{
	'!': {TokBang, TokBangEqual},
	'=': {TokEqual, TokEqualEqual},
	'<': {TokLess, TokLessEqual},
	'>': {TokGreater, TokGreaterEqual},
}

func lexText(l *Lexer) stateFn {
	r := l.next()
	if r == 0 && l.atEOF {
		return l.emit(TokEOF)
	}

	switch {
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.ignore()
		return lexText
	case r == '/':
		if l.accept("/") {
			return lexComment
		}
		return l.emit(TokSlash)
	case r == '"':
		return lexString
	case r >= '0' && r <= '9':
		return lexNumber
	case strings.ContainsRune(identifierChars, r):
		return lexIdentifier
	}

	if tok, ok := singles[r]; ok {
		return l.emit(tok)
	}
	if toks, ok := withEqual[r]; ok {
		if l.accept("=") {
			return l.emit(toks[1])
		}
		return l.emit(toks[0])
	}
	return l.errorf("Unexpected character.")
}

// lexComment skips a '//' comment up to, but not including, the newline.
func lexComment(l *Lexer) stateFn {
	for {
		r := l.next()
		if r == 0 && l.atEOF {
			break
		}
		if r == '\n' {
			l.backup()
			break
		}
	}
	l.ignore()
	return lexText
}

// lexString is entered after the opening quote. Strings may span lines and have no escapes.
func lexString(l *Lexer) stateFn {
	for {
		r := l.next()
		if r == 0 && l.atEOF {
			return l.errorf("Unterminated string.")
		}
		if r == '"' {
			break
		}
	}
	value := l.input[l.start+1 : l.pos-1]
	return l.emitLiteral(TokString, value)
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	// A fractional part needs at least one digit after the dot.
	if l.peek() == '.' && strings.ContainsRune(digits, l.peekNext()) {
		l.next()
		l.acceptRun(digits)
	}
	number, err := strconv.ParseFloat(l.input[l.start:l.pos], 64)
	if err != nil {
		return l.errorf("Invalid number %q.", l.input[l.start:l.pos])
	}
	return l.emitLiteral(TokNumber, number)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	if kw, ok := keywords[l.input[l.start:l.pos]]; ok {
		return l.emit(kw)
	}
	return l.emit(TokIdentifier)
}
