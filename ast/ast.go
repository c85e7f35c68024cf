// Package ast contains the node types produced by the parser and
// annotated by the semantic analyzer.
//
// Expressions and statements are each a small closed sum type: an
// interface with an unexported marker method, implemented only by the
// handful of structs declared in this package. A code generator that
// switches over every concrete type is guaranteed, by the compiler, to
// have handled every variant that parsing or analysis can produce.
package ast

// Program is an ordered sequence of statements.
type Program struct {
	Stmts []Stmt
}

// Expr is implemented by every expression node: integer literals,
// variable references, unary and binary operator applications, and
// builtin calls.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// IntLiteral is a literal integer constant, already validated to fit
// in an unsigned byte by the lexer.
type IntLiteral struct {
	Value  uint8
	Line   int
	Column int
}

func (*IntLiteral) exprNode() {}

// Var is a reference to a declared variable. Addr and Resolved are
// filled in by the semantic analyzer; the parser always produces a
// Var with Resolved false.
type Var struct {
	Name     string
	Addr     uint8
	Resolved bool
	Line     int
	Column   int
}

func (*Var) exprNode() {}

// Unary applies a prefix operator (negation, bitwise complement, or
// logical NOT) to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
	Line    int
	Column  int
}

func (*Unary) exprNode() {}

// Binary applies an infix operator to two operands. Every Binary node
// has exactly two children - there is no partial or malformed shape
// once the parser has produced a node of this type.
type Binary struct {
	Op     BinaryOp
	Left   Expr
	Right  Expr
	Line   int
	Column int
}

func (*Binary) exprNode() {}

// Call represents a builtin function call used as an expression. The
// only builtin callable as an expression is input(), which takes no
// arguments.
type Call struct {
	Builtin string
	Args    []Expr
	Line    int
	Column  int
}

func (*Call) exprNode() {}

// VarDecl declares a new variable and initializes it from an
// expression: `var name = expr;`
type VarDecl struct {
	Name   string
	Init   Expr
	Addr   uint8
	Line   int
	Column int
}

func (*VarDecl) stmtNode() {}

// Assign stores the value of an expression into an existing variable:
// `name = expr;`
type Assign struct {
	Name   string
	Expr   Expr
	Addr   uint8
	Line   int
	Column int
}

func (*Assign) stmtNode() {}

// PostInc increments a variable in place: `name++;`
type PostInc struct {
	Name   string
	Addr   uint8
	Line   int
	Column int
}

func (*PostInc) stmtNode() {}

// PostDec decrements a variable in place: `name--;`
type PostDec struct {
	Name   string
	Addr   uint8
	Line   int
	Column int
}

func (*PostDec) stmtNode() {}

// If is a conditional statement with an optional else-block. Else is
// nil when no else-clause was written.
type If struct {
	Cond   Expr
	Then   []Stmt
	Else   []Stmt
	Line   int
	Column int
}

func (*If) stmtNode() {}

// While is a pre-tested loop.
type While struct {
	Cond   Expr
	Body   []Stmt
	Line   int
	Column int
}

func (*While) stmtNode() {}

// DoWhile is a post-tested loop: the body always runs at least once.
type DoWhile struct {
	Body   []Stmt
	Cond   Expr
	Line   int
	Column int
}

func (*DoWhile) stmtNode() {}

// OutputStmt writes the value of an expression to the console:
// `output(expr);`
type OutputStmt struct {
	Expr   Expr
	Line   int
	Column int
}

func (*OutputStmt) stmtNode() {}

// ExprStmt is an expression evaluated for its side effect and then
// discarded, used for bare calls such as `input();`.
type ExprStmt struct {
	Expr   Expr
	Line   int
	Column int
}

func (*ExprStmt) stmtNode() {}
