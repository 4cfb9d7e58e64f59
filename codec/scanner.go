// SPDX-License-Identifier: MIT
//
// File: scanner.go
// Role: Rune scanner for the bracketed notation: brackets, features, symbols, strings.

package codec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// token kinds
type kind int

const (
	tokEOF kind = iota
	tokIllegal
	tokLBrack  // [
	tokRBrack  // ]
	tokLAngle  // <
	tokRAngle  // >
	tokComma   // ,
	tokFeature // NAME:
	tokSymbol  // bare word
	tokString  // "double quoted"
)

var kindNames = [...]string{
	tokEOF:     "end of input",
	tokIllegal: "illegal token",
	tokLBrack:  "'['",
	tokRBrack:  "']'",
	tokLAngle:  "'<'",
	tokRAngle:  "'>'",
	tokComma:   "','",
	tokFeature: "feature",
	tokSymbol:  "symbol",
	tokString:  "string",
}

func (k kind) String() string {
	return kindNames[k]
}

type token struct {
	kind      kind
	lit       string // feature name without colon, string without quotes
	line, col int
}

// scanner splits SimpleMRS text into tokens, tracking 1-based positions.
type scanner struct {
	src       string
	pos       int
	line, col int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) peekRune() rune {
	if s.pos >= len(s.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *scanner) read() rune {
	if s.pos >= len(s.src) {
		return utf8.RuneError
	}
	r, n := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += n
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && unicode.IsSpace(s.peekRune()) {
		s.read()
	}
}

func isDelim(r rune) bool {
	switch r {
	case '[', ']', '<', '>', ',', '"', ':':
		return true
	}
	return unicode.IsSpace(r)
}

// scan returns the next token.
func (s *scanner) scan() token {
	s.skipSpace()
	tok := token{line: s.line, col: s.col}
	if s.pos >= len(s.src) {
		tok.kind = tokEOF
		return tok
	}

	switch r := s.read(); r {
	case '[':
		tok.kind = tokLBrack
	case ']':
		tok.kind = tokRBrack
	case '<':
		tok.kind = tokLAngle
	case '>':
		tok.kind = tokRAngle
	case ',':
		tok.kind = tokComma
	case '"':
		lit, ok := s.scanString()
		tok.kind, tok.lit = tokString, lit
		if !ok {
			tok.kind = tokIllegal
		}
	case ':':
		tok.kind, tok.lit = tokIllegal, ":"
	default:
		var b strings.Builder
		b.WriteRune(r)
		for s.pos < len(s.src) && !isDelim(s.peekRune()) {
			b.WriteRune(s.read())
		}
		tok.kind, tok.lit = tokSymbol, b.String()
		if s.peekRune() == ':' {
			s.read()
			tok.kind = tokFeature
		}
	}

	return tok
}

// scanString reads up to the closing quote; the opening one is consumed.
func (s *scanner) scanString() (string, bool) {
	var b strings.Builder
	for s.pos < len(s.src) {
		r := s.read()
		switch r {
		case '"':
			return b.String(), true
		case '\\':
			if s.pos >= len(s.src) {
				return b.String(), false
			}
			b.WriteRune(s.read())
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), false
}

// skipLnk consumes a surface alignment such as <0:3>, <@1>, <#2> or <1 2> if
// one follows. It reports whether one was skipped.
func (s *scanner) skipLnk() bool {
	save := *s
	s.skipSpace()
	if s.peekRune() != '<' {
		*s = save
		return false
	}
	s.read()
	for s.pos < len(s.src) {
		r := s.read()
		switch {
		case r == '>':
			return true
		case unicode.IsDigit(r), r == ':', r == '@', r == '#', r == '-', r == ' ':
		default:
			*s = save
			return false
		}
	}
	*s = save
	return false
}
