/*
File    : minilang/ast/ast.go
Package ast defines the typed syntax tree of SPEC_FULL.md §3: a
ProgramNode holding top-level lets and funcs, BlockNode/StmtNode/
ExprNode variants beneath each function. Sub-expressions and sub-blocks
are shared (referenced, not copied) via ordinary Go pointers — ast
nodes form an immutable DAG once the parser returns, the same shape the
specification describes, expressed with the garbage collector standing
in for the arena-of-indices it suggests for a language without one (see
DESIGN.md).

Field naming and per-node doc-comment density follow parser/node.go's
convention (one line per node, a line per field only where the field's
role isn't obvious from its name); node variants themselves are
grounded on original_source/src/tree.rs.
*/
package ast

import (
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/symbols"
	"github.com/akashmaji946/minilang/value"
)

// ProgramNode is the root of a parsed source file: the program-level
// symbol table plus its top-level declarations.
type ProgramNode struct {
	Symbols *symbols.Table
	Lets    []*LetNode
	Funcs   []*FuncNode
}

// Parameter is one formal parameter name.
type Parameter struct {
	Name string
}

// FuncNode is a function declaration: its name, parameters, and body.
// FuncName and Arity implement value.Callable so a FuncNode can be
// wrapped directly in a value.Value via value.Func(node).
type FuncNode struct {
	Token      lexer.Token
	Name       string
	Parameters []Parameter
	Body       *BlockNode
}

func (f *FuncNode) FuncName() string { return f.Name }
func (f *FuncNode) Arity() int       { return len(f.Parameters) }

// BlockNode is an ordered list of statements with its own symbol table
// (SPEC_FULL.md §5 codifies flat function scope: a function's block
// table and a function's frame are effectively the same scope; nested
// blocks such as a while-body carry their own table, but the analyzer
// declares and resolves their names in the function body's table, and
// they get no frame of their own).
type BlockNode struct {
	Symbols    *symbols.Table
	Statements []StmtNode
}

// StmtNode is implemented by every statement variant.
type StmtNode interface {
	stmtNode()
}

// ExprNode is implemented by every expression variant.
type ExprNode interface {
	exprNode()
}

// LetNode declares a name, optionally with an initializer expression
// (nil Init means "no initializer", matching SPEC_FULL.md §4.2's
// `let = 'let' ID ['=' expr] ';'`).
type LetNode struct {
	Token lexer.Token
	Name  string
	Init  ExprNode
}

func (*LetNode) stmtNode() {}

// AssignNode is `name = expr;`.
type AssignNode struct {
	Token lexer.Token
	Name  string
	Expr  ExprNode
}

func (*AssignNode) stmtNode() {}

// ReturnNode is `return expr;`.
type ReturnNode struct {
	Token lexer.Token
	Expr  ExprNode
}

func (*ReturnNode) stmtNode() {}

// PrintNode is `print expr;`.
type PrintNode struct {
	Token lexer.Token
	Expr  ExprNode
}

func (*PrintNode) stmtNode() {}

// WhileNode is `while cond block`.
type WhileNode struct {
	Token     lexer.Token
	Condition ExprNode
	Body      *BlockNode
}

func (*WhileNode) stmtNode() {}

// IfElseNode is `if cond block ['else' block]`. Else is nil when absent.
type IfElseNode struct {
	Token     lexer.Token
	Condition ExprNode
	Then      *BlockNode
	Else      *BlockNode
}

func (*IfElseNode) stmtNode() {}

// VarNode references a declared name.
type VarNode struct {
	Token lexer.Token
	Name  string
}

func (*VarNode) exprNode() {}

// ValNode is a constant value already known at parse time (int32,
// flt32, char, or bool literal).
type ValNode struct {
	Token lexer.Token
	Value value.Value
}

func (*ValNode) exprNode() {}

// StringNode is a string literal; kept distinct from ValNode so the
// parser need not construct a value.Value of kind Chars directly (it
// mirrors original_source/src/tree.rs's separate ExprNode::String arm).
type StringNode struct {
	Token lexer.Token
	Text  string
}

func (*StringNode) exprNode() {}

// BinaryOp identifies which binary operator a BinaryNode applies.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEqualTo
	OpNotEqualTo
	OpLessThan
	OpGreaterThan
	OpLessThanEq
	OpGreaterThanEq
)

// BinaryNode covers both arithmetic (Add/Sub/Mul/Div) and relational
// (EqualTo/NotEqualTo/LessThan/GreaterThan/LessThanEq/GreaterThanEq)
// binary expressions — one struct per SPEC_FULL.md §3's "binary
// arithmetic ... binary relational ..." node list, distinguished by Op
// the way original_source/src/tree.rs uses one enum arm per operator
// but the arms share identical shape (Rc<ExprNode>, Rc<ExprNode>).
type BinaryNode struct {
	Token lexer.Token
	Op    BinaryOp
	Left  ExprNode
	Right ExprNode
}

func (*BinaryNode) exprNode() {}

// CallNode is `name(args...)`.
type CallNode struct {
	Token lexer.Token
	Name  string
	Args  []ExprNode
}

func (*CallNode) exprNode() {}
