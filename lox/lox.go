// Package lox wires the lexer, parser and executor into a reusable runner.
package lox

import (
	"errors"
	"io"

	"go.creack.net/lox/ast"
	"go.creack.net/lox/diagnostic"
	"go.creack.net/lox/executor"
	"go.creack.net/lox/lexer"
	"go.creack.net/lox/parser"
)

// Exit codes, following sysexits.h.
const (
	ExitOK       = 0
	ExitDataErr  = 65 // Lexical or parse error.
	ExitSoftware = 70 // Runtime error.
	ExitIOErr    = 74 // Input or output failure.
)

// Runner executes Lox sources. It survives failures and can be reused, e.g. by a REPL.
type Runner struct {
	stdout io.Writer
	sink   *diagnostic.Printer
}

// NewRunner creates a Runner printing program output to stdout and diagnostics to stderr.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdout: stdout,
		sink:   diagnostic.NewPrinter(stderr),
	}
}

// Parse scans and parses source. Diagnostics are reported as they are found.
func (r *Runner) Parse(source string) (ast.Program, error) {
	tokens, lexErr := lexer.Scan(source, r.sink)

	prog, err := parser.Parse(tokens)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			r.sink.ReportToken(perr.Token, perr.Message)
		}
		return ast.Program{}, err
	}
	// A program with lexical errors parses but never runs.
	if lexErr != nil {
		return ast.Program{}, lexErr
	}
	return prog, nil
}

// Run parses and executes source.
func (r *Runner) Run(source string) error {
	prog, err := r.Parse(source)
	if err != nil {
		return err
	}
	return executor.Execute(prog, r.stdout, r.sink)
}

// Tokens scans source without parsing it.
func (r *Runner) Tokens(source string) ([]lexer.Token, error) {
	return lexer.Scan(source, r.sink)
}

// Diagnostics returns the number of diagnostics reported since the runner was created.
func (r *Runner) Diagnostics() int { return r.sink.Count() }

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	var perr *parser.Error
	var rerr *executor.RuntimeError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, lexer.ErrSyntax), errors.As(err, &perr):
		return ExitDataErr
	case errors.As(err, &rerr):
		return ExitSoftware
	}
	return ExitIOErr
}
