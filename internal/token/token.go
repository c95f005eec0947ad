package token

// Type is a string alias for token types
// Using string makes debugging easier (we can print "NUMBER" instead of a number)
type Type string

// Token is one lexical unit of source text.
// The scanner creates tokens; the parser consumes them. Operator tokens are
// kept inside expression nodes so runtime errors can point at a source line.
type Token struct {
	Type    Type
	Lexeme  string   // Exact source substring
	Literal *Literal // Payload for NUMBER, STRING and IDENT tokens, nil otherwise
	Line    int      // 1-based source line
}

// Token constants - these are the vocabulary of our language
const (
	// Single-character tokens
	LeftParen  Type = "("
	RightParen Type = ")"
	LeftBrace  Type = "{"
	RightBrace Type = "}"
	Comma      Type = ","
	Dot        Type = "."
	Minus      Type = "-"
	Plus       Type = "+"
	Semicolon  Type = ";"
	Slash      Type = "/"
	Star       Type = "*"
	Question   Type = "?"
	Colon      Type = ":"

	// One or two character tokens
	Bang         Type = "!"
	BangEqual    Type = "!="
	Equal        Type = "="
	EqualEqual   Type = "=="
	Greater      Type = ">"
	GreaterEqual Type = ">="
	Less         Type = "<"
	LessEqual    Type = "<="

	// Literals
	Ident  Type = "IDENT"
	String Type = "STRING"
	Number Type = "NUMBER"

	// Keywords
	And    Type = "AND"
	Class  Type = "CLASS"
	Else   Type = "ELSE"
	False  Type = "FALSE"
	For    Type = "FOR"
	Fun    Type = "FUN"
	If     Type = "IF"
	Nil    Type = "NIL"
	Or     Type = "OR"
	Print  Type = "PRINT"
	Return Type = "RETURN"
	Super  Type = "SUPER"
	This   Type = "THIS"
	True   Type = "TRUE"
	Var    Type = "VAR"
	While  Type = "WHILE"

	EOF Type = "EOF"
)

// keywords maps reserved words to their token type.
// Initialized once, never mutated. Only true/false/nil are reachable from
// the expression grammar; the rest are reserved for the statement grammar
// and used by the parser's synchronization routine.
var keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupIdent checks if an identifier is a reserved word.
// A hit returns the keyword type, a miss returns Ident.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Ident
}
