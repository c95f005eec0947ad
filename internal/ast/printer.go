package ast

import "strings"

// Print renders a tree as a fully parenthesized prefix-notation string for
// debugging and tests: the operator lexeme is the head, groupings use
// "group" and ternaries "ternary". It reads the tree without touching it
// and is not on the evaluation path.
func Print(expr Expression) string {
	switch expr := expr.(type) {
	case *Binary:
		return parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *Unary:
		return parenthesize(expr.Operator.Lexeme, expr.Right)
	case *Ternary:
		return parenthesize("ternary", expr.Condition, expr.Then, expr.Else)
	case *Grouping:
		return parenthesize("group", expr.Inner)
	case *Literal:
		return expr.Value.String()
	}
	return ""
}

func parenthesize(name string, exprs ...Expression) string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteString(" ")
		out.WriteString(Print(e))
	}
	out.WriteString(")")
	return out.String()
}
