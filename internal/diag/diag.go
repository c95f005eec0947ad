// Package diag holds the error value reported by the scanner and the
// shared line-keyed report format used by the outer driver.
package diag

import "fmt"

// LexError is one invalid character or unterminated string found during
// scanning. Lexical errors are collected, not fatal: the scanner keeps
// going and the driver reports each one before parsing.
type LexError struct {
	Line    int
	Pos     int // Byte offset of the offending grapheme cluster
	Message string
}

func (e *LexError) Error() string {
	return e.Message
}

// Line formats an error report keyed to a source line. Lexical and parse
// errors both surface through this format.
func Line(line int, message string) string {
	return fmt.Sprintf("Error on line %d: %s", line, message)
}
