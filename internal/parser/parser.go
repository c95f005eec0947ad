// Package parser turns a token sequence into a single expression tree by
// recursive descent through a fixed precedence ladder:
//
//	expression → comma
//	comma      → ternary ( "," ternary )*
//	ternary    → equality ( "?" expression ":" expression )?
//	equality   → comparison ( ("!=" | "==") comparison )*
//	comparison → term ( (">" | ">=" | "<" | "<=") term )*
//	term       → factor ( ("-" | "+") factor )*
//	factor     → unary ( ("/" | "*") unary )*
//	unary      → ("!" | "-") unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// Binary chains fold left-to-right, so repeated operators associate left.
// Ternary branches recurse into the full expression rule and are therefore
// right-associative.
package parser

import (
	"quill/internal/ast"
	"quill/internal/token"
)

// maxDepth bounds expression nesting so pathological input (unbounded
// parenthesis or unary chains) fails with a parse error instead of
// exhausting the call stack.
const maxDepth = 512

// Error is a fatal parse error: the offending token and a message. The
// parser stops at the first one.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Parser consumes a scanned token sequence.
type Parser struct {
	tokens  []token.Token
	current int
	depth   int
}

// New creates a parser for the given tokens. The sequence must end with
// an EOF token, as produced by the lexer.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse produces one expression tree, or the first parse error.
func (p *Parser) Parse() (ast.Expression, error) {
	return p.expression()
}

func (p *Parser) expression() (ast.Expression, error) {
	if p.depth >= maxDepth {
		return nil, &Error{Token: p.peek(), Message: "Expression too deeply nested."}
	}
	p.depth++
	defer func() { p.depth-- }()

	return p.comma()
}

func (p *Parser) comma() (ast.Expression, error) {
	return p.leftAssociative(p.ternary, token.Comma)
}

func (p *Parser) ternary() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.matchAny(token.Question) {
		then, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.Colon, "Expected ':' after then branch"); err != nil {
			return nil, err
		}
		els, err := p.expression()
		if err != nil {
			return nil, err
		}
		expr = &ast.Ternary{Condition: expr, Then: then, Else: els}
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.leftAssociative(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.leftAssociative(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.leftAssociative(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.leftAssociative(p.unary, token.Slash, token.Star)
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.matchAny(token.Bang, token.Minus) {
		if p.depth >= maxDepth {
			return nil, &Error{Token: p.previous(), Message: "Expression too deeply nested."}
		}
		p.depth++
		defer func() { p.depth-- }()

		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expression, error) {
	switch p.peek().Type {
	case token.False:
		p.advance()
		return &ast.Literal{Value: token.NewBoolean(false)}, nil
	case token.True:
		p.advance()
		return &ast.Literal{Value: token.NewBoolean(true)}, nil
	case token.Nil:
		p.advance()
		return &ast.Literal{Value: nil}, nil
	case token.Number, token.String:
		p.advance()
		return &ast.Literal{Value: p.previous().Literal}, nil
	case token.LeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	}

	return nil, &Error{Token: p.peek(), Message: "Expect expression."}
}

// leftAssociative parses next ( <op> next )* for the given operator set,
// building a Binary node per matched operator and folding left-to-right.
func (p *Parser) leftAssociative(next func() (ast.Expression, error), types ...token.Type) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for p.matchAny(types...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// matchAny consumes the current token if it is one of the given types.
func (p *Parser) matchAny(types ...token.Type) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected token type, or fails with a parse
// error at the current token.
func (p *Parser) consume(typ token.Type, message string) error {
	if p.check(typ) {
		p.advance()
		return nil
	}
	return &Error{Token: p.peek(), Message: message}
}

func (p *Parser) check(typ token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == typ
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// synchronize skips tokens to the next statement boundary: past a
// semicolon, or up to a keyword that starts a statement. The expression
// grammar has no statement boundaries yet, so nothing calls this on the
// happy path; it is the recovery hook for the statement-level grammar.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}

		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}
