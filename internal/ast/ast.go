// Package ast defines the expression tree produced by the parser.
//
// The node set is closed: exactly five kinds implement Expression, and the
// marker method keeps outside packages from adding more. A tree is built
// bottom-up during parsing, never mutated afterwards, and each node
// exclusively owns its children.
package ast

import "quill/internal/token"

// Expression is the base interface for all tree nodes.
type Expression interface {
	expressionNode() // Marker method keeping the node set closed
}

// Binary represents <left> <op> <right>.
// The operator token is retained solely so runtime errors can carry a
// source line.
type Binary struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

// Unary represents !<expr> or -<expr>.
type Unary struct {
	Operator token.Token
	Right    Expression
}

// Ternary represents <condition> ? <then> : <else>.
type Ternary struct {
	Condition Expression
	Then      Expression
	Else      Expression
}

// Grouping represents a parenthesized expression.
type Grouping struct {
	Inner Expression
}

// Literal holds a literal value, or nil for the "nil" keyword.
type Literal struct {
	Value *token.Literal
}

func (b *Binary) expressionNode()   {}
func (u *Unary) expressionNode()    {}
func (t *Ternary) expressionNode()  {}
func (g *Grouping) expressionNode() {}
func (l *Literal) expressionNode()  {}
