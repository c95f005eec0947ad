package evaluator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/token"
)

func eval(t *testing.T, input string) (*token.Literal, error) {
	t.Helper()

	tokens, lexErrs := lexer.Scan(input)
	require.Empty(t, lexErrs, "unexpected lex errors")

	expr, err := parser.New(tokens).Parse()
	require.NoError(t, err, "unexpected parse error")

	return Eval(expr)
}

func evalOK(t *testing.T, input string) *token.Literal {
	t.Helper()

	result, err := eval(t, input)
	require.NoError(t, err)
	return result
}

func TestEvalNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"123", 123},
		{"1.234", 1.234},
		{"1 + 2", 3},
		{"3 - 2", 1},
		{"2 * 1", 2},
		{"6 / 3", 2},
		{"-1", -1},
		{"--1", 1},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"5 - 3 - 1", 1},
	}

	for i, tt := range tests {
		got := evalOK(t, tt.input)
		if got == nil || got.Kind != token.NumberLit || got.Number != tt.expected {
			t.Fatalf("tests[%d] - result wrong. expected=%v, got=%v", i, tt.expected, got)
		}
	}
}

func TestEvalBooleans(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 3 + 4", true}, // + binds tighter than <
		{"2 > 1", true},
		{"2 >= 2", true},
		{"1 < 2", true},
		{"2 <= 2", true},
		{"2 < 1", false},
		{"!true", false},
		{"!nil", true},
		{"!0", false}, // zero is truthy
		{`!""`, false},
		{"!!true", true},
		{"1 == 1", true},
		{"1 != 2", true},
		{`"hello" == "hello"`, true},
		{`"hello" != "world"`, true},
		{"nil == nil", true},
		{"nil == 1", false},
		{"nil != 1", true},
		{`1 == "1"`, false}, // mismatched variants are never equal
		{`true == 1`, false},
	}

	for i, tt := range tests {
		got := evalOK(t, tt.input)
		if got == nil || got.Kind != token.BooleanLit || got.Boolean != tt.expected {
			t.Fatalf("tests[%d] - result wrong. expected=%v, got=%v", i, tt.expected, got)
		}
	}
}

func TestEvalStringConcatenation(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello" + "world"`, "helloworld"},
		{`"hello" + 1`, "hello1"},
		{`1 + "hello"`, "1hello"},
		{`"hello" + ""`, "hello"},
		{`"hello" + true`, "hellotrue"},
		{`"value: " + nil`, "value: nil"},
		{`nil + "!"`, "nil!"},
		{`"n=" + 1.5`, "n=1.5"},
	}

	for i, tt := range tests {
		got := evalOK(t, tt.input)
		if got == nil || got.Kind != token.StringLit || got.Text != tt.expected {
			t.Fatalf("tests[%d] - result wrong. expected=%q, got=%v", i, tt.expected, got)
		}
	}
}

func TestEvalNil(t *testing.T) {
	got := evalOK(t, "nil")
	require.Nil(t, got)

	got = evalOK(t, "(nil)")
	require.Nil(t, got)
}

func TestEvalTernary(t *testing.T) {
	got := evalOK(t, "true ? 1 : 2")
	require.Equal(t, token.NewNumber(1), got)

	got = evalOK(t, "false ? 1 : 2")
	require.Equal(t, token.NewNumber(2), got)

	// Truthiness of the condition, not just booleans
	got = evalOK(t, "0 ? 1 : 2")
	require.Equal(t, token.NewNumber(1), got)

	got = evalOK(t, "nil ? 1 : 2")
	require.Equal(t, token.NewNumber(2), got)
}

func TestEvalTernaryShortCircuits(t *testing.T) {
	// The unselected branch is never evaluated, so the division by zero
	// in the else-branch never raises
	got := evalOK(t, "true ? 1 : (1/0)")
	require.Equal(t, token.NewNumber(1), got)

	got = evalOK(t, "false ? (1/0) : 2")
	require.Equal(t, token.NewNumber(2), got)
}

func TestEvalCommaIsUnsupported(t *testing.T) {
	// The parser accepts comma chains but no evaluation rule exists for
	// the "," operator yet
	_, err := eval(t, "1, 2")
	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	require.Equal(t, "Unexpected operator", runtimeErr.Message)
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := eval(t, "1 / 0")

	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	require.Equal(t, "Division by zero.", runtimeErr.Message)
	require.NotNil(t, runtimeErr.Token)
	require.Equal(t, token.Slash, runtimeErr.Token.Type)
}

func TestEvalTypeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`-"hello"`, "Operands must be numbers."},
		{"-nil", "Operands must be numbers."},
		{`1 - "a"`, "Operands must be numbers."},
		{`"a" * 2`, "Operands must be numbers."},
		{`true / 2`, "Operands must be numbers."},
		{"true + false", "operands must be numbers or strings."},
		{"nil + 1", "operands must be numbers or strings."},
	}

	for i, tt := range tests {
		_, err := eval(t, tt.input)
		var runtimeErr *RuntimeError
		require.ErrorAs(t, err, &runtimeErr, "tests[%d]", i)
		if runtimeErr.Message != tt.message {
			t.Fatalf("tests[%d] - message wrong. expected=%q, got=%q", i, tt.message, runtimeErr.Message)
		}
		if runtimeErr.Token == nil {
			t.Fatalf("tests[%d] - expected an originating token", i)
		}
	}
}

func TestEvalPermissiveComparisons(t *testing.T) {
	// Comparing anything but two numbers yields false, not a type error
	tests := []string{
		`"hello" > "world"`,
		`"hello" < "world"`,
		`"hello" >= "world"`,
		`"hello" <= "world"`,
		"true > false",
		"true < false",
		"nil < 1",
		`1 > "1"`,
	}

	for i, input := range tests {
		got := evalOK(t, input)
		if got == nil || got.Kind != token.BooleanLit || got.Boolean {
			t.Fatalf("tests[%d] - expected false, got=%v", i, got)
		}
	}
}

func TestEvalErrorPropagatesFromOperand(t *testing.T) {
	_, err := eval(t, "(1/0) + 2")
	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	require.Equal(t, "Division by zero.", runtimeErr.Message)
}

func TestRuntimeErrorRendering(t *testing.T) {
	operator := token.Token{Type: token.Slash, Lexeme: "/", Line: 7}
	withToken := &RuntimeError{Message: "Division by zero.", Token: &operator}
	require.Equal(t, "Division by zero. [line 7]", withToken.Error())

	bare := &RuntimeError{Message: "Unexpected expression"}
	require.Equal(t, "Unexpected expression", bare.Error())
}
