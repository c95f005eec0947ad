// Package evaluator walks an expression tree once and produces a literal
// value, or a runtime error. It is a pure function of its input: no
// environment, no shared state, a single top-down left-to-right pass.
package evaluator

import (
	"fmt"

	"quill/internal/ast"
	"quill/internal/token"
)

// RuntimeError aborts the current evaluation. The originating token, when
// present, attaches a source line to the report; it is omitted only for
// internal invariant violations.
type RuntimeError struct {
	Message string
	Token   *token.Token
}

func (e *RuntimeError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("%s [line %d]", e.Message, e.Token.Line)
	}
	return e.Message
}

func newError(message string) *RuntimeError {
	return &RuntimeError{Message: message}
}

func errorAt(message string, operator token.Token) *RuntimeError {
	return &RuntimeError{Message: message, Token: &operator}
}

func operandsMustBeNumbers(operator token.Token) *RuntimeError {
	return errorAt("Operands must be numbers.", operator)
}

// Eval evaluates the tree to a literal value; nil with a nil error means
// the expression evaluated to "nil".
func Eval(expr ast.Expression) (*token.Literal, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		return expr.Value, nil

	case *ast.Grouping:
		return Eval(expr.Inner)

	case *ast.Unary:
		return evalUnary(expr)

	case *ast.Binary:
		return evalBinary(expr)

	case *ast.Ternary:
		// Only the selected branch is ever evaluated
		condition, err := Eval(expr.Condition)
		if err != nil {
			return nil, err
		}
		if token.Truthy(condition) {
			return Eval(expr.Then)
		}
		return Eval(expr.Else)
	}

	return nil, newError(fmt.Sprintf("Unexpected expression %T", expr))
}

// evalUnary handles ! and -
func evalUnary(expr *ast.Unary) (*token.Literal, error) {
	right, err := Eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.Minus:
		if right == nil || right.Kind != token.NumberLit {
			return nil, operandsMustBeNumbers(expr.Operator)
		}
		return token.NewNumber(-right.Number), nil

	case token.Bang:
		return token.NewBoolean(!token.Truthy(right)), nil
	}

	return nil, errorAt("Unexpected operator", expr.Operator)
}

// evalBinary evaluates both operands, then applies the operator.
func evalBinary(expr *ast.Binary) (*token.Literal, error) {
	left, err := Eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := Eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.Minus:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(expr.Operator)
		}
		return token.NewNumber(l - r), nil

	case token.Star:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(expr.Operator)
		}
		return token.NewNumber(l * r), nil

	case token.Slash:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(expr.Operator)
		}
		if r == 0 {
			return nil, errorAt("Division by zero.", expr.Operator)
		}
		return token.NewNumber(l / r), nil

	case token.Plus:
		return evalPlus(left, right, expr.Operator)

	case token.Greater:
		return compareNumbers(left, right, func(l, r float64) bool { return l > r }), nil
	case token.GreaterEqual:
		return compareNumbers(left, right, func(l, r float64) bool { return l >= r }), nil
	case token.Less:
		return compareNumbers(left, right, func(l, r float64) bool { return l < r }), nil
	case token.LessEqual:
		return compareNumbers(left, right, func(l, r float64) bool { return l <= r }), nil

	case token.EqualEqual:
		return token.NewBoolean(token.LiteralEqual(left, right)), nil
	case token.BangEqual:
		return token.NewBoolean(!token.LiteralEqual(left, right)), nil
	}

	return nil, errorAt("Unexpected operator", expr.Operator)
}

// evalPlus adds numbers, or concatenates when either side is a string.
// String coercion takes priority: the non-string side is rendered as its
// display text, with absence rendered as "nil".
func evalPlus(left, right *token.Literal, operator token.Token) (*token.Literal, error) {
	if l, r, ok := bothNumbers(left, right); ok {
		return token.NewNumber(l + r), nil
	}

	if left != nil && left.Kind == token.StringLit {
		return token.NewString(left.Text + right.String()), nil
	}
	if right != nil && right.Kind == token.StringLit {
		return token.NewString(left.String() + right.Text), nil
	}

	return nil, errorAt("operands must be numbers or strings.", operator)
}

// compareNumbers applies a numeric comparison, or yields false for any
// operand combination that is not two numbers. Mismatched-type comparison
// is permissive, not a type error.
func compareNumbers(left, right *token.Literal, cmp func(l, r float64) bool) *token.Literal {
	if l, r, ok := bothNumbers(left, right); ok {
		return token.NewBoolean(cmp(l, r))
	}
	return token.NewBoolean(false)
}

func bothNumbers(left, right *token.Literal) (l, r float64, ok bool) {
	if left == nil || right == nil || left.Kind != token.NumberLit || right.Kind != token.NumberLit {
		return 0, 0, false
	}
	return left.Number, right.Number, true
}
