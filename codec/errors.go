// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and positioned syntax errors of the codec.

package codec

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("codec: syntax error")

// SyntaxError describes malformed input. Line and Col are 1-based.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
	Near string // offending token text, if any
}

// Error implements error.
func (e *SyntaxError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("%s: %s @%d:%d", ErrSyntax, e.Msg, e.Line, e.Col)
	}
	return fmt.Sprintf("%s: %s: `%s` @%d:%d", ErrSyntax, e.Msg, e.Near, e.Line, e.Col)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
