// Package driver wires the pipeline together: scan, report lexical
// errors, parse, evaluate, and print the outcome. It also hosts the two
// front ends - file mode and the interactive loop.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/evaluator"
	"quill/internal/lexer"
	"quill/internal/parser"
)

// Driver runs source text through the pipeline and reports to out.
// The logger carries a debug-level trace of the stages; pass
// zerolog.Nop() to disable it.
type Driver struct {
	out io.Writer
	log zerolog.Logger
}

func New(out io.Writer, log zerolog.Logger) *Driver {
	return &Driver{out: out, log: log}
}

// Run executes one full pipeline pass over source. Lexical errors are
// reported and their spans excluded from the parser's input; a parse
// error stops the pipeline; otherwise the evaluated value or runtime
// error is printed. Errors never propagate - the caller always gets its
// next turn.
func (d *Driver) Run(source string) {
	tokens, lexErrs := lexer.Scan(source)
	for _, e := range lexErrs {
		fmt.Fprintln(d.out, diag.Line(e.Line, e.Message))
	}
	d.log.Debug().Int("tokens", len(tokens)).Int("lex_errors", len(lexErrs)).Msg("scanned")

	expr, err := parser.New(tokens).Parse()
	if err != nil {
		var parseErr *parser.Error
		if errors.As(err, &parseErr) {
			fmt.Fprintln(d.out, diag.Line(parseErr.Token.Line, parseErr.Message))
		} else {
			fmt.Fprintln(d.out, err.Error())
		}
		return
	}
	d.log.Debug().Str("tree", ast.Print(expr)).Msg("parsed")

	result, err := evaluator.Eval(expr)
	if err != nil {
		fmt.Fprintln(d.out, err.Error())
		return
	}
	fmt.Fprintln(d.out, result.String())
}
