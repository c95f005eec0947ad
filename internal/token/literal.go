package token

import "strconv"

// LiteralKind tags the variant held by a Literal.
type LiteralKind int

const (
	IdentifierLit LiteralKind = iota
	StringLit
	NumberLit
	BooleanLit
)

// Literal is the runtime value of the language: a tagged union over
// identifier text, string text, a 64-bit float, or a boolean. Absence
// ("nil") is not a variant - it is a nil *Literal, so every slot that can
// hold a value is a pointer.
type Literal struct {
	Kind    LiteralKind
	Text    string // IdentifierLit and StringLit
	Number  float64
	Boolean bool
}

func NewIdentifier(text string) *Literal { return &Literal{Kind: IdentifierLit, Text: text} }
func NewString(text string) *Literal     { return &Literal{Kind: StringLit, Text: text} }
func NewNumber(n float64) *Literal       { return &Literal{Kind: NumberLit, Number: n} }
func NewBoolean(b bool) *Literal         { return &Literal{Kind: BooleanLit, Boolean: b} }

// LiteralEqual reports variant-aware equality: two nils are equal, nil never
// equals a present value, differing variants are never equal, and matching
// variants compare by native equality.
func LiteralEqual(left, right *Literal) bool {
	if left == nil || right == nil {
		return left == right
	}
	if left.Kind != right.Kind {
		return false
	}
	switch left.Kind {
	case NumberLit:
		return left.Number == right.Number
	case BooleanLit:
		return left.Boolean == right.Boolean
	default: // StringLit, IdentifierLit
		return left.Text == right.Text
	}
}

// Truthy maps a value to a boolean for conditional use: booleans are
// themselves, nil is false, everything else (including 0 and "") is true.
func Truthy(l *Literal) bool {
	if l == nil {
		return false
	}
	if l.Kind == BooleanLit {
		return l.Boolean
	}
	return true
}

// String renders the value as display text: numbers via shortest float
// formatting, booleans as "true"/"false", strings and identifiers verbatim,
// and a nil receiver as "nil".
func (l *Literal) String() string {
	if l == nil {
		return "nil"
	}
	switch l.Kind {
	case NumberLit:
		return strconv.FormatFloat(l.Number, 'g', -1, 64)
	case BooleanLit:
		return strconv.FormatBool(l.Boolean)
	default:
		return l.Text
	}
}
