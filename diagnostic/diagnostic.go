// Package diagnostic defines where human readable errors go.
package diagnostic

import (
	"fmt"
	"io"
	"os"

	"go.creack.net/lox/lexer"
)

// Sink records diagnostics. Both entry points are fire-and-forget.
type Sink interface {
	ReportLine(line int, message string)
	ReportToken(tok lexer.Token, message string)
}

// Where describes the location of tok the way diagnostics print it.
func Where(tok lexer.Token) string {
	if tok.Type == lexer.TokEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

// Format renders a diagnostic line, without trailing newline.
func Format(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// Printer is a Sink writing one line per diagnostic.
type Printer struct {
	w     io.Writer
	count int
}

// NewPrinter creates a Printer writing to w, stderr when nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{w: w}
}

func (p *Printer) ReportLine(line int, message string) {
	p.report(Format(line, "", message))
}

func (p *Printer) ReportToken(tok lexer.Token, message string) {
	p.report(Format(tok.Line, Where(tok), message))
}

func (p *Printer) report(msg string) {
	p.count++
	_, _ = fmt.Fprintln(p.w, msg) // Best effort.
}

// Count returns the number of diagnostics reported since creation or the last Reset.
func (p *Printer) Count() int { return p.count }

func (p *Printer) Reset() { p.count = 0 }
