// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: Recursive-descent parser for extended SimpleMRS.
// Determinism:
//   - Lists keep textual order; equality groups keep member order.

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/semalg/sement"
)

// Decode parses exactly one element from text.
func Decode(text string) (*sement.Element, error) {
	p := newParser(text)
	e, err := p.element()
	if err != nil {
		return nil, err
	}
	if tok := p.scan(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected text after element")
	}

	return e, nil
}

// DecodeAll parses every element in text, which may be empty.
func DecodeAll(text string) ([]*sement.Element, error) {
	p := newParser(text)
	var out []*sement.Element
	for {
		tok := p.scan()
		if tok.kind == tokEOF {
			return out, nil
		}
		p.unscan()
		e, err := p.element()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

// parser reads tokens with one token of lookahead.
type parser struct {
	s    *scanner
	buf  token
	n    int // 1 if buf holds an unread token
	vars sement.Properties
}

func newParser(text string) *parser {
	return &parser{s: newScanner(text)}
}

func (p *parser) scan() token {
	if p.n == 1 {
		p.n = 0
		return p.buf
	}
	p.buf = p.s.scan()
	return p.buf
}

func (p *parser) unscan() { p.n = 1 }

// skipLnk must only be called with an empty lookahead buffer.
func (p *parser) skipLnk() {
	if p.n == 0 {
		p.s.skipLnk()
	}
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	near := tok.lit
	if tok.kind != tokSymbol && tok.kind != tokFeature && tok.kind != tokString && tok.kind != tokIllegal {
		near = ""
	}
	return &SyntaxError{Line: tok.line, Col: tok.col, Msg: fmt.Sprintf(format, args...), Near: near}
}

func (p *parser) expect(k kind) (token, error) {
	tok := p.scan()
	if tok.kind != k {
		return tok, p.errorf(tok, "expected %s, found %s", k, tok.kind)
	}
	return tok, nil
}

// element parses "[ lnk? surface? FEATURE value ... ]".
func (p *parser) element() (*sement.Element, error) {
	p.vars = make(sement.Properties)
	e := &sement.Element{
		Rels:  []*sement.EP{},
		Slots: map[string]string{},
		Eqs:   []sement.Equality{},
		HCons: []*sement.HCons{},
		ICons: []*sement.ICons{},
	}
	if _, err := p.expect(tokLBrack); err != nil {
		return nil, err
	}
	p.skipLnk()
	if tok := p.scan(); tok.kind != tokString {
		p.unscan()
	}

	for {
		tok := p.scan()
		if tok.kind == tokRBrack {
			break
		}
		if tok.kind != tokFeature {
			return nil, p.errorf(tok, "expected feature or ']', found %s", tok.kind)
		}
		var err error
		switch strings.ToUpper(tok.lit) {
		case "TOP", "LTOP":
			e.Top, err = p.variable()
		case "INDEX":
			e.Index, err = p.variable()
		case "RELS":
			e.Rels, err = p.rels()
		case "HCONS":
			err = p.constraints(func(l, rel, r string) {
				e.HCons = append(e.HCons, &sement.HCons{Hi: l, Relation: rel, Lo: r})
			})
		case "ICONS":
			err = p.constraints(func(l, rel, r string) {
				e.ICons = append(e.ICons, &sement.ICons{Left: l, Relation: rel, Right: r})
			})
		case "EQS":
			e.Eqs, err = p.eqs()
		case "SLOTS":
			err = p.slots(e.Slots)
		default:
			err = p.errorf(tok, "unknown feature")
		}
		if err != nil {
			return nil, err
		}
	}

	e.Variables = p.vars
	return e, nil
}

// variable parses a variable name and an optional property block.
func (p *parser) variable() (string, error) {
	tok, err := p.expect(tokSymbol)
	if err != nil {
		return "", err
	}
	v := strings.ToLower(tok.lit)
	props, ok := p.vars[v]
	if !ok {
		props = map[string]string{}
		p.vars[v] = props
	}

	if next := p.scan(); next.kind != tokLBrack {
		p.unscan()
		return v, nil
	}
	if next := p.scan(); next.kind != tokSymbol { // type tag, optional
		p.unscan()
	}
	for {
		tok := p.scan()
		switch tok.kind {
		case tokRBrack:
			return v, nil
		case tokFeature:
			val, err := p.expect(tokSymbol)
			if err != nil {
				return "", err
			}
			props[strings.ToUpper(tok.lit)] = strings.ToLower(val.lit)
		default:
			return "", p.errorf(tok, "expected property or ']', found %s", tok.kind)
		}
	}
}

func (p *parser) rels() ([]*sement.EP, error) {
	if _, err := p.expect(tokLAngle); err != nil {
		return nil, err
	}
	rels := []*sement.EP{}
	for {
		tok := p.scan()
		switch tok.kind {
		case tokRAngle:
			return rels, nil
		case tokLBrack:
			ep, err := p.ep()
			if err != nil {
				return nil, err
			}
			rels = append(rels, ep)
		default:
			return nil, p.errorf(tok, "expected '[' or '>', found %s", tok.kind)
		}
	}
}

// ep parses the body of "[ pred lnk? surface? LBL: h ROLE: value ... ]"; the
// opening bracket is consumed.
func (p *parser) ep() (*sement.EP, error) {
	tok := p.scan()
	if tok.kind != tokSymbol && tok.kind != tokString {
		return nil, p.errorf(tok, "expected predicate, found %s", tok.kind)
	}
	ep := &sement.EP{Predicate: NormalizePredicate(tok.lit), Args: map[string]string{}}
	p.skipLnk()
	if tok := p.scan(); tok.kind != tokString {
		p.unscan()
	}

	lbl, err := p.expect(tokFeature)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(lbl.lit, sement.RoleLabel) {
		return nil, p.errorf(lbl, "expected LBL")
	}
	if ep.Label, err = p.variable(); err != nil {
		return nil, err
	}

	for {
		tok := p.scan()
		switch tok.kind {
		case tokRBrack:
			return ep, nil
		case tokFeature:
			role := strings.ToUpper(tok.lit)
			if role == sement.RoleCarg {
				val := p.scan()
				if val.kind != tokString && val.kind != tokSymbol {
					return nil, p.errorf(val, "expected CARG value, found %s", val.kind)
				}
				ep.Args[role] = val.lit
				continue
			}
			v, err := p.variable()
			if err != nil {
				return nil, err
			}
			ep.Args[role] = v
		default:
			return nil, p.errorf(tok, "expected role or ']', found %s", tok.kind)
		}
	}
}

// constraints parses "< left rel right ... >".
func (p *parser) constraints(add func(left, rel, right string)) error {
	if _, err := p.expect(tokLAngle); err != nil {
		return err
	}
	for {
		tok := p.scan()
		if tok.kind == tokRAngle {
			return nil
		}
		p.unscan()
		left, err := p.variable()
		if err != nil {
			return err
		}
		rel, err := p.expect(tokSymbol)
		if err != nil {
			return err
		}
		right, err := p.variable()
		if err != nil {
			return err
		}
		add(left, strings.ToLower(rel.lit), right)
	}
}

// eqs parses "< a eq b eq c , d eq e >"; commas between groups are optional.
func (p *parser) eqs() ([]sement.Equality, error) {
	if _, err := p.expect(tokLAngle); err != nil {
		return nil, err
	}
	var (
		out   = []sement.Equality{}
		group sement.Equality
		start token
	)
	closeGroup := func() error {
		if group == nil {
			return nil
		}
		if len(group) < 2 {
			return p.errorf(start, "equality needs at least two variables")
		}
		out = append(out, group)
		group = nil
		return nil
	}

	for {
		tok := p.scan()
		switch {
		case tok.kind == tokRAngle:
			if err := closeGroup(); err != nil {
				return nil, err
			}
			return out, nil
		case tok.kind == tokComma:
			if err := closeGroup(); err != nil {
				return nil, err
			}
		case tok.kind == tokSymbol && strings.EqualFold(tok.lit, "eq"):
			if group == nil {
				return nil, p.errorf(tok, "'eq' without a left-hand variable")
			}
			v, err := p.variable()
			if err != nil {
				return nil, err
			}
			if !group.Contains(v) {
				group = append(group, v)
			}
		case tok.kind == tokSymbol:
			if err := closeGroup(); err != nil {
				return nil, err
			}
			p.unscan()
			v, err := p.variable()
			if err != nil {
				return nil, err
			}
			group, start = sement.Equality{v}, tok
		default:
			return nil, p.errorf(tok, "expected variable, 'eq' or '>', found %s", tok.kind)
		}
	}
}

// slots parses "< ROLE: var ,? ... >".
func (p *parser) slots(into map[string]string) error {
	if _, err := p.expect(tokLAngle); err != nil {
		return err
	}
	for {
		tok := p.scan()
		switch tok.kind {
		case tokRAngle:
			return nil
		case tokComma:
		case tokFeature:
			v, err := p.variable()
			if err != nil {
				return err
			}
			into[strings.ToUpper(tok.lit)] = v
		default:
			return p.errorf(tok, "expected slot role or '>', found %s", tok.kind)
		}
	}
}

// NormalizePredicate lower-cases a predicate and strips surrounding quotes
// and a trailing "_rel".
func NormalizePredicate(pred string) string {
	pred = strings.Trim(pred, `"'`)
	pred = strings.ToLower(pred)

	return strings.TrimSuffix(pred, "_rel")
}
