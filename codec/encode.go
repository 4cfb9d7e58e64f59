// SPDX-License-Identifier: MIT
//
// File: encode.go
// Role: Extended SimpleMRS serialization.
// Determinism:
//   - Roles, properties and slots are written in a fixed order, so equal
//     elements always encode to identical text.

package codec

import (
	"sort"
	"strings"

	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/variable"
)

// Conventional orders; anything not listed follows alphabetically.
var (
	roleOrder = []string{
		"LBL", "ARG0", "ARG1", "ARG2", "ARG3", "ARG4", "RSTR", "BODY",
		"L-INDEX", "R-INDEX", "L-HNDL", "R-HNDL", "ARG", "CARG",
	}
	propertyOrder = []string{
		"PERS", "NUM", "GEND", "IND", "PT", "PRONTYPE", "SF", "TENSE", "MOOD", "PROG", "PERF",
	}
)

type encodeOptions struct {
	indent     bool
	properties bool
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

// WithIndent puts each block on its own line.
func WithIndent() EncodeOption {
	return func(o *encodeOptions) {
		o.indent = true
	}
}

// WithoutProperties omits variable property blocks.
func WithoutProperties() EncodeOption {
	return func(o *encodeOptions) {
		o.properties = false
	}
}

// Encode serializes e. Empty blocks are omitted.
func Encode(e *sement.Element, opts ...EncodeOption) string {
	o := encodeOptions{properties: true}
	for _, opt := range opts {
		opt(&o)
	}
	enc := &encoder{opts: o, pending: sement.Properties{}}
	if o.properties {
		enc.pending = e.Variables.Copy()
	}

	return enc.element(e)
}

// EncodeAll serializes elements one per line (or separated by a blank line
// when indented).
func EncodeAll(elems []*sement.Element, opts ...EncodeOption) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = Encode(e, opts...)
	}
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	sep := "\n"
	if o.indent {
		sep = "\n\n"
	}

	return strings.Join(parts, sep)
}

type encoder struct {
	opts    encodeOptions
	pending sement.Properties // properties not yet written
}

func (enc *encoder) element(e *sement.Element) string {
	delim := " "
	if enc.opts.indent {
		delim = "\n  "
	}

	var parts []string
	var hook []string
	if e.Top != "" {
		hook = append(hook, "TOP: "+enc.variable(e.Top))
	}
	if e.Index != "" {
		hook = append(hook, "INDEX: "+enc.variable(e.Index))
	}
	if len(hook) > 0 {
		parts = append(parts, strings.Join(hook, delim))
	}
	if s := enc.rels(e.Rels); s != "" {
		parts = append(parts, s)
	}
	if len(e.HCons) > 0 {
		toks := make([]string, len(e.HCons))
		for i, hc := range e.HCons {
			toks[i] = enc.variable(hc.Hi) + " " + hc.Relation + " " + enc.variable(hc.Lo)
		}
		parts = append(parts, "HCONS: < "+strings.Join(toks, " ")+" >")
	}
	if len(e.ICons) > 0 {
		toks := make([]string, len(e.ICons))
		for i, ic := range e.ICons {
			toks[i] = enc.variable(ic.Left) + " " + ic.Relation + " " + enc.variable(ic.Right)
		}
		parts = append(parts, "ICONS: < "+strings.Join(toks, " ")+" >")
	}
	if len(e.Eqs) > 0 {
		toks := make([]string, len(e.Eqs))
		for i, eq := range e.Eqs {
			names := make([]string, len(eq))
			for j, v := range eq {
				names[j] = enc.variable(v)
			}
			toks[i] = strings.Join(names, " eq ")
		}
		parts = append(parts, "EQS: < "+strings.Join(toks, " ")+" >")
	}
	if len(e.Slots) > 0 {
		roles := sortRoles(e.SlotRoles())
		toks := make([]string, len(roles))
		for i, role := range roles {
			toks[i] = role + ": " + enc.variable(e.Slots[role])
		}
		parts = append(parts, "SLOTS: < "+strings.Join(toks, " ")+" >")
	}

	return "[ " + strings.Join(parts, delim) + " ]"
}

func (enc *encoder) rels(rels []*sement.EP) string {
	if len(rels) == 0 {
		return ""
	}
	delim := " "
	if enc.opts.indent {
		delim = "\n  " + strings.Repeat(" ", len("RELS: < "))
	}
	toks := make([]string, len(rels))
	for i, ep := range rels {
		var b strings.Builder
		b.WriteString("[ ")
		b.WriteString(encodePredicate(ep.Predicate))
		b.WriteString(" LBL: ")
		b.WriteString(enc.variable(ep.Label))
		for _, role := range sortRoles(ep.Roles()) {
			b.WriteString(" " + role + ": ")
			if role == sement.RoleCarg {
				b.WriteString(quote(ep.Args[role]))
				continue
			}
			b.WriteString(enc.variable(ep.Args[role]))
		}
		b.WriteString(" ]")
		toks[i] = b.String()
	}

	return "RELS: < " + strings.Join(toks, delim) + " >"
}

// variable writes v, followed by its properties the first time v is seen.
func (enc *encoder) variable(v string) string {
	props := enc.pending[v]
	delete(enc.pending, v)
	if len(props) == 0 {
		return v
	}
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sortByPriority(names, propertyOrder)

	toks := []string{v, "[", variable.Type(v)}
	for _, k := range names {
		toks = append(toks, k+":", props[k])
	}
	toks = append(toks, "]")

	return strings.Join(toks, " ")
}

func sortRoles(roles []string) []string {
	out := append([]string(nil), roles...)
	sortByPriority(out, roleOrder)

	return out
}

// sortByPriority orders names by their position in order, then alphabetically.
func sortByPriority(names, order []string) {
	rank := func(n string) int {
		for i, o := range order {
			if o == n {
				return i
			}
		}
		return len(order)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
}

func encodePredicate(pred string) string {
	if strings.ContainsAny(pred, " \t\n\"':<>[]") {
		return quote(pred)
	}
	return pred
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
