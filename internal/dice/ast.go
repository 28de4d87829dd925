package dice

import "fmt"

// Expr is a node of the parsed expression tree. The tree is built once by
// Parse and never mutated; String renders the prefix s-expression form used
// for introspection, e.g. "(+ (d 2 6) 3)".
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Literal is a numeric literal.
type Literal struct {
	Value int
}

// Identity is the unary plus. Semantically a no-op, kept for grammar fidelity.
type Identity struct {
	Operand Expr
}

// Negate is the unary minus.
type Negate struct {
	Operand Expr
}

// Add is the binary addition of Left and Right.
type Add struct {
	Left, Right Expr
}

// Subtract is the binary subtraction of Right from Left.
type Subtract struct {
	Left, Right Expr
}

// RollExpr represents Count dice of Sides sides. When the notation omits the
// count (as in "d6") the parser synthesizes Literal(1) for Count.
type RollExpr struct {
	Count, Sides Expr
}

func (Literal) exprNode()  {}
func (Identity) exprNode() {}
func (Negate) exprNode()   {}
func (Add) exprNode()      {}
func (Subtract) exprNode() {}
func (RollExpr) exprNode()     {}

func (e Literal) String() string  { return fmt.Sprintf("%d", e.Value) }
func (e Identity) String() string { return fmt.Sprintf("(+ %s)", e.Operand) }
func (e Negate) String() string   { return fmt.Sprintf("(- %s)", e.Operand) }
func (e Add) String() string      { return fmt.Sprintf("(+ %s %s)", e.Left, e.Right) }
func (e Subtract) String() string { return fmt.Sprintf("(- %s %s)", e.Left, e.Right) }
func (e RollExpr) String() string     { return fmt.Sprintf("(d %s %s)", e.Count, e.Sides) }
