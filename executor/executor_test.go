package executor_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/lox/ast"
	"go.creack.net/lox/diagnostic"
	"go.creack.net/lox/executor"
	"go.creack.net/lox/lexer"
	"go.creack.net/lox/parser"
	"go.creack.net/lox/value"
)

type testCase struct {
	name    string
	input   string
	stdout  string
	errMsg  string // Expected runtime error message, empty when none.
	errAt   string // Lexeme of the token the runtime error points to.
	reports string // Expected diagnostic output.
}

func TestExecutor(t *testing.T) {
	tests := []testCase{
		{name: "empty", input: "", stdout: ""},
		{name: "precedence", input: "print 1 + 2 * 3;", stdout: "7\n"},
		{name: "grouping", input: "print (1 + 2) * 3;", stdout: "9\n"},
		{name: "left assoc", input: "print 10 - 4 - 3;", stdout: "3\n"},
		{name: "arithmetic", input: "print -1 + 2 * 3 - 4 / 5;", stdout: "4.2\n"},
		{name: "division", input: "print 1 / 2;", stdout: "0.5\n"},
		{name: "integral float", input: "print 3.0;", stdout: "3\n"},
		{name: "fraction", input: "print 3.5;", stdout: "3.5\n"},
		{name: "nil", input: "print nil;", stdout: "nil\n"},
		{name: "booleans", input: "print true; print false;", stdout: "true\nfalse\n"},
		{name: "string", input: "print \"hello world\";", stdout: "hello world\n"},
		{name: "string concat", input: "print \"hello\" + \" \" + \"world\";", stdout: "hello world\n"},
		{name: "string number concat", input: "print \"a\" + 1;", stdout: "a1\n"},
		{name: "number string concat", input: "print 1 + \"a\";", stdout: "1a\n"},
		{name: "fraction concat", input: "print \"v\" + 2.5;", stdout: "v2.5\n"},
		{name: "sum then concat", input: "print 1 + 2 + \"a\";", stdout: "3a\n"},
		{name: "concat then concat", input: "print \"a\" + 1 + 2;", stdout: "a12\n"},
		{name: "comparisons", input: "print 1 < 2; print 2 <= 2; print 1 > 2; print 2 >= 3;", stdout: "true\ntrue\nfalse\nfalse\n"},
		{name: "equality", input: "print 1 == 1; print 1 != 1; print nil == nil; print nil == false;", stdout: "true\nfalse\ntrue\nfalse\n"},
		{name: "equality across types", input: "print 1 == \"1\"; print true != 1;", stdout: "false\ntrue\n"},
		{name: "string equality", input: "print \"a\" == \"a\";", stdout: "true\n"},
		{name: "not", input: "print !true; print !nil; print !0; print !\"\";", stdout: "false\ntrue\nfalse\nfalse\n"},
		{name: "negate", input: "print -(-3);", stdout: "3\n"},
		{name: "comma", input: "print (1, 2);", stdout: "2\n"},
		{name: "comma chain", input: "print (1, 2, 3);", stdout: "3\n"},
		{name: "ternary", input: "print true ? 1 : 2; print false ? 1 : 2;", stdout: "1\n2\n"},
		{name: "ternary nested", input: "print 3 < 4 ? 2 > 5 ? \"no\" : \"yes\" : \"also no\";", stdout: "yes\n"},
		{name: "ternary short circuit", input: "print true ? 1 : (1/0);", stdout: "1\n"},
		{name: "ternary short circuit then", input: "print false ? 1/0 : 2;", stdout: "2\n"},
		{name: "expression statement", input: "1 + 2; print 3;", stdout: "3\n"},

		{
			name: "comparison chain", input: "print 1 < 2 < 3;",
			errMsg: "Operands must be numbers.", errAt: "<",
			reports: "[line 1] Error at '<': Operands must be numbers.\n",
		},
		{name: "add bool", input: "print 1 + true;", errMsg: "Operands must be two numbers or two strings.", errAt: "+"},
		{name: "add nil string", input: "print nil + \"a\";", errMsg: "Operands must be two numbers or two strings.", errAt: "+"},
		{name: "divide by zero", input: "1 / 0;", errMsg: "Division by 0.", errAt: "/"},
		{name: "divide by negative zero", input: "1 / -0;", errMsg: "Division by 0.", errAt: "/"},
		{name: "divide string", input: "\"a\" / 0;", errMsg: "Operands must be numbers.", errAt: "/"},
		{name: "subtract string", input: "\"a\" - \"b\";", errMsg: "Operands must be numbers.", errAt: "-"},
		{name: "multiply nil", input: "2 * nil;", errMsg: "Operands must be numbers.", errAt: "*"},
		{name: "negate string", input: "-\"a\";", errMsg: "Operand must be a number.", errAt: "-"},
		{name: "ternary number condition", input: "print 1 ? 1 : 2;", errMsg: "Condition must be a boolean.", errAt: "?"},
		{name: "ternary nil condition", input: "print nil ? 1 : 2;", errMsg: "Condition must be a boolean.", errAt: "?"},
		{name: "comma evaluates left", input: "print (1/0, 2);", errMsg: "Division by 0.", errAt: "/"},
		{
			name: "stops at first failure", input: "print 1;\nprint -nil;\nprint 2;", stdout: "1\n",
			errMsg: "Operand must be a number.", errAt: "-",
			reports: "[line 2] Error at '-': Operand must be a number.\n",
		},
		{name: "no partial output", input: "print \"a\" + (1 < nil);", errMsg: "Operands must be numbers.", errAt: "<"},
	}

	for _, tt := range tests {
		t.Run(tt.name, run(tt))
	}
}

func run(tt testCase) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()

		tokens, err := lexer.Scan(tt.input, nil)
		require.NoError(t, err, "scan")
		prog, err := parser.Parse(tokens)
		require.NoError(t, err, "parse")

		stdout := bytes.NewBuffer(nil)
		stderr := bytes.NewBuffer(nil)
		err = executor.Execute(prog, stdout, diagnostic.NewPrinter(stderr))

		if tt.errMsg == "" {
			require.NoError(t, err, "execute")
			require.Empty(t, stderr.String(), "Stderr")
		} else {
			var rerr *executor.RuntimeError
			require.True(t, errors.As(err, &rerr), "expected runtime error, got %v", err)
			assert.Equal(t, tt.errMsg, rerr.Message, "Message mismatch")
			assert.Equal(t, tt.errAt, rerr.Token.Lexeme, "Token mismatch")
			assert.Equal(t, rerr.Error()+"\n", stderr.String(), "Reported once")
			if tt.reports != "" {
				assert.Equal(t, tt.reports, stderr.String(), "Stderr mismatch")
			}
		}
		require.Equal(t, tt.stdout, stdout.String(), "Stdout mismatch")
	}
}

func TestEvaluate(t *testing.T) {
	tokens, err := lexer.Scan("\"a\" + 1;", nil)
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)

	v, err := executor.Evaluate(prog.Statements[0].(ast.ExpressionStmt).Expression)
	require.NoError(t, err)
	assert.Equal(t, value.String("a1"), v)
}

func TestExecuteWithoutSink(t *testing.T) {
	op := lexer.Token{Type: lexer.TokMinus, Lexeme: "-", Line: 7}
	prog := ast.Program{Statements: []ast.Stmt{
		ast.ExpressionStmt{Expression: ast.UnaryExpr{Operator: op, Right: ast.LiteralExpr{Value: value.True}}},
	}}
	err := executor.Execute(prog, bytes.NewBuffer(nil), nil)
	require.EqualError(t, err, "[line 7] Error at '-': Operand must be a number.")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestExecutePrintFailure(t *testing.T) {
	prog := ast.Program{Statements: []ast.Stmt{
		ast.PrintStmt{Expression: ast.LiteralExpr{Value: value.Number(1)}},
	}}
	stderr := bytes.NewBuffer(nil)
	err := executor.Execute(prog, failWriter{}, diagnostic.NewPrinter(stderr))
	require.Error(t, err)

	var rerr *executor.RuntimeError
	assert.False(t, errors.As(err, &rerr), "write failures are not runtime errors")
	assert.Empty(t, stderr.String())
}
