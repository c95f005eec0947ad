// Package lexer converts UTF-8 source text into an ordered sequence of
// tokens plus any lexical errors found along the way.
package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"quill/internal/diag"
	"quill/internal/token"
)

// cluster is one user-perceived character (a grapheme cluster) together
// with its starting byte offset in the source.
type cluster struct {
	s    string
	from int
}

// Scanner holds the state while tokenizing input.
// It walks the source one grapheme cluster at a time, so a multi-byte
// character is never split mid-lexeme.
type Scanner struct {
	source   string
	clusters []cluster
	start    int // Index of the first cluster of the current lexeme
	current  int // Index of the next cluster to consume
	line     int
	tokens   []token.Token
	errs     []diag.LexError
}

// Scan tokenizes source. The token slice is always terminated by an EOF
// token whose lexeme is empty and whose line is the final line reached.
// Lexical errors are collected alongside, never fatal to the scan.
func Scan(source string) ([]token.Token, []diag.LexError) {
	s := &Scanner{source: source, line: 1}

	g := uniseg.NewGraphemes(source)
	for g.Next() {
		from, _ := g.Positions()
		s.clusters = append(s.clusters, cluster{s: g.Str(), from: from})
	}

	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Lexeme: "", Line: s.line})
	return s.tokens, s.errs
}

// scanToken recognizes one token (or comment, whitespace run, or error)
// starting at the current cluster.
func (s *Scanner) scanToken() {
	g := s.advance()

	switch g {
	// Single-character tokens
	case "(":
		s.addToken(token.LeftParen)
	case ")":
		s.addToken(token.RightParen)
	case "{":
		s.addToken(token.LeftBrace)
	case "}":
		s.addToken(token.RightBrace)
	case ",":
		s.addToken(token.Comma)
	case ".":
		s.addToken(token.Dot)
	case "-":
		s.addToken(token.Minus)
	case "+":
		s.addToken(token.Plus)
	case ";":
		s.addToken(token.Semicolon)
	case "*":
		s.addToken(token.Star)
	case "?":
		s.addToken(token.Question)
	case ":":
		s.addToken(token.Colon)

	// One or two character tokens: prefer the longer match
	case "!":
		s.addMatched("=", token.BangEqual, token.Bang)
	case "=":
		s.addMatched("=", token.EqualEqual, token.Equal)
	case "<":
		s.addMatched("=", token.LessEqual, token.Less)
	case ">":
		s.addMatched("=", token.GreaterEqual, token.Greater)

	// Comments or division
	case "/":
		switch {
		case s.match("/"):
			s.lineComment()
		case s.match("*"):
			s.blockComment()
		default:
			s.addToken(token.Slash)
		}

	// Whitespace separates tokens and is otherwise discarded
	case " ", "\r", "\t":

	case "\n":
		s.line++

	case "\"":
		s.scanString()

	default:
		switch {
		case isDigit(g):
			s.scanNumber()
		case isAlpha(g):
			s.scanIdentifier()
		default:
			s.addError(s.line, fmt.Sprintf("Invalid token at line %d pos %d: %s", s.line, s.clusters[s.start].from, g))
		}
	}
}

// lineComment consumes to end of line. The newline itself is left for the
// main loop so line counting stays in one place.
func (s *Scanner) lineComment() {
	for !s.atEnd() && s.peek() != "\n" {
		s.advance()
	}
}

// blockComment consumes a /* ... */ comment, tracking nesting depth
// explicitly: each inner /* increments it, each */ decrements it, and
// scanning resumes only when depth returns to zero. An unterminated
// comment consumes the rest of the input.
func (s *Scanner) blockComment() {
	depth := 1
	for depth > 0 && !s.atEnd() {
		switch g := s.advance(); {
		case g == "\n":
			s.line++
		case g == "/" && s.peek() == "*":
			s.advance()
			depth++
		case g == "*" && s.peek() == "/":
			s.advance()
			depth--
		}
	}
}

// scanString consumes a string literal. Strings may span lines; the stored
// literal excludes the delimiting quotes. Hitting end of input first
// produces exactly one error at the line the string started on, and no
// token.
func (s *Scanner) scanString() {
	startLine := s.line

	for !s.atEnd() {
		g := s.advance()
		if g == "\n" {
			s.line++
			continue
		}
		if g == "\"" {
			// Trim the quotes from the stored literal
			text := s.source[s.byteAt(s.start+1):s.byteAt(s.current-1)]
			s.addLiteralToken(token.String, token.NewString(text))
			return
		}
	}

	s.addError(startLine, fmt.Sprintf("Unterminated string at line %d pos %d", startLine, s.clusters[s.start].from))
}

// scanNumber consumes a maximal run of digits with at most one decimal
// point. A second decimal point is not consumed: "1.234.567.123" scans as
// NUMBER(1.234), DOT, NUMBER(567.123).
func (s *Scanner) scanNumber() {
	hasDecimal := false
	for !s.atEnd() {
		g := s.peek()
		if g == "." {
			if hasDecimal {
				break
			}
			hasDecimal = true
		} else if !isDigit(g) {
			break
		}
		s.advance()
	}

	n, err := strconv.ParseFloat(s.lexeme(), 64)
	if err != nil {
		s.addError(s.line, fmt.Sprintf("Invalid number at line %d pos %d", s.line, s.clusters[s.start].from))
		return
	}
	s.addLiteralToken(token.Number, token.NewNumber(n))
}

// scanIdentifier consumes an identifier or keyword. The accumulated text
// is looked up in the keyword table; a miss yields an IDENT token carrying
// the text as its literal payload.
func (s *Scanner) scanIdentifier() {
	for !s.atEnd() && isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.lexeme()
	typ := token.LookupIdent(text)
	if typ == token.Ident {
		s.addLiteralToken(typ, token.NewIdentifier(text))
		return
	}
	s.addToken(typ)
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.clusters)
}

// advance consumes and returns the next cluster.
func (s *Scanner) advance() string {
	g := s.clusters[s.current].s
	s.current++
	return g
}

// peek looks at the next cluster without consuming it.
func (s *Scanner) peek() string {
	if s.atEnd() {
		return ""
	}
	return s.clusters[s.current].s
}

// match consumes the next cluster only if it equals expected.
func (s *Scanner) match(expected string) bool {
	if s.atEnd() || s.clusters[s.current].s != expected {
		return false
	}
	s.current++
	return true
}

// byteAt returns the byte offset of cluster i, or the end of the source.
func (s *Scanner) byteAt(i int) int {
	if i >= len(s.clusters) {
		return len(s.source)
	}
	return s.clusters[i].from
}

// lexeme returns the exact source substring of the current token.
func (s *Scanner) lexeme() string {
	return s.source[s.byteAt(s.start):s.byteAt(s.current)]
}

func (s *Scanner) addToken(typ token.Type) {
	s.addLiteralToken(typ, nil)
}

func (s *Scanner) addLiteralToken(typ token.Type, literal *token.Literal) {
	s.tokens = append(s.tokens, token.Token{
		Type:    typ,
		Lexeme:  s.lexeme(),
		Literal: literal,
		Line:    s.line,
	})
}

// addMatched emits the two-character token when the next cluster matches
// expected, the one-character token otherwise (maximal munch).
func (s *Scanner) addMatched(expected string, onMatch, otherwise token.Type) {
	if s.match(expected) {
		s.addToken(onMatch)
	} else {
		s.addToken(otherwise)
	}
}

func (s *Scanner) addError(line int, message string) {
	s.errs = append(s.errs, diag.LexError{
		Line:    line,
		Pos:     s.clusters[s.start].from,
		Message: message,
	})
}

// isDigit checks if the cluster starts with 0-9.
func isDigit(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return r >= '0' && r <= '9'
}

// isAlpha checks if the cluster starts with a letter or underscore.
func isAlpha(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsLetter(r) || r == '_'
}

// isAlphaNumeric checks if the cluster starts with a letter, digit or
// underscore.
func isAlphaNumeric(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
