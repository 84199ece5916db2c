package ast

// Stmt is the closed set of statement nodes.
type Stmt interface {
	stmt()
}

type ExpressionStmt struct {
	Expression Expr
}

func (ExpressionStmt) stmt() {}

type PrintStmt struct {
	Expression Expr
}

func (PrintStmt) stmt() {}

// Program represents the top-level program.
type Program struct {
	Statements []Stmt
}
