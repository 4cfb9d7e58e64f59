// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Type tags, specificity ranks and name validation for variables.
// Determinism:
//   - All functions are pure; no hidden state.

package variable

import (
	"errors"
	"fmt"
)

// Type tags of the variable hierarchy.
const (
	Unspecific = "u"
	Individual = "i"
	NonEvent   = "p"
	Event      = "e"
	Instance   = "x"
	Handle     = "h"
)

// ErrBadVariable indicates a variable name that is not "<tag><digits>" with a known tag.
var ErrBadVariable = errors.New("variable: malformed variable name")

// ranks maps each known type tag to its specificity.
var ranks = map[string]int{
	Unspecific: 0,
	Individual: 1,
	NonEvent:   1,
	Event:      2,
	Instance:   2,
	Handle:     2,
}

// Type returns the type tag of v (its first byte), or "" for an empty string.
func Type(v string) string {
	if v == "" {
		return ""
	}

	return v[:1]
}

// Rank returns the specificity of a type tag, or -1 if the tag is unknown.
func Rank(tag string) int {
	r, ok := ranks[tag]
	if !ok {
		return -1
	}

	return r
}

// RankOf is Rank(Type(v)).
func RankOf(v string) int {
	return Rank(Type(v))
}

// IsHandle reports whether v is typed h.
func IsHandle(v string) bool {
	return Type(v) == Handle
}

// KnownType reports whether tag belongs to the hierarchy.
func KnownType(tag string) bool {
	_, ok := ranks[tag]

	return ok
}

// Valid returns nil if v is a known tag followed by one or more decimal digits.
// The returned error wraps ErrBadVariable.
func Valid(v string) error {
	if len(v) < 2 || !KnownType(Type(v)) {
		return fmt.Errorf("%q: %w", v, ErrBadVariable)
	}
	var i int
	for i = 1; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return fmt.Errorf("%q: %w", v, ErrBadVariable)
		}
	}

	return nil
}
