// SPDX-License-Identifier: MIT
//
// File: resolve.go
// Role: Substitute representatives throughout an element.
// Determinism:
//   - Output lists keep the input order; only variable names change.
// AI-HINT (file):
//   - CARG values are constants, never substituted.
//   - Slots pass through untouched.

package resolve

import (
	"github.com/katalvlaran/semalg/sement"
)

// Option adjusts Resolve.
type Option func(*options)

type options struct {
	prefer map[string]bool
}

// Prefer makes vars the representatives of their classes regardless of rank.
// When a class holds several of them, the first in class order wins.
func Prefer(vars ...string) Option {
	return func(o *options) {
		for _, v := range vars {
			o.prefer[v] = true
		}
	}
}

// Resolve returns e with its pending equalities collapsed. If e has none, e
// itself is returned. Otherwise a new element is built; e is left untouched.
//
// Every variable referenced by the result has an entry in its Variables map,
// empty if nothing is known about it.
func Resolve(e *sement.Element, opts ...Option) *sement.Element {
	if e.Resolved() {
		return e
	}
	o := options{prefer: make(map[string]bool)}
	for _, opt := range opts {
		opt(&o)
	}

	classes := Group(e.Eqs)
	reps := make(map[string]string)
	for _, class := range classes {
		rep := o.representative(class)
		for _, v := range class {
			reps[v] = rep
		}
	}
	sub := func(v string) string {
		if r, ok := reps[v]; ok {
			return r
		}

		return v
	}

	out := &sement.Element{
		Top:       sub(e.Top),
		Index:     sub(e.Index),
		Rels:      make([]*sement.EP, 0, len(e.Rels)),
		Slots:     sement.CopySlots(e.Slots),
		Eqs:       []sement.Equality{},
		HCons:     make([]*sement.HCons, 0, len(e.HCons)),
		ICons:     make([]*sement.ICons, 0, len(e.ICons)),
		Variables: mergeProperties(e.Variables, classes, reps),
	}

	for _, ep := range e.Rels {
		args := make(map[string]string, len(ep.Args))
		for role, v := range ep.Args {
			if role == sement.RoleCarg {
				args[role] = v
				continue
			}
			args[role] = sub(v)
		}
		out.Rels = append(out.Rels, &sement.EP{Predicate: ep.Predicate, Label: sub(ep.Label), Args: args})
	}
	for _, hc := range e.HCons {
		out.HCons = append(out.HCons, &sement.HCons{Hi: sub(hc.Hi), Relation: hc.Relation, Lo: sub(hc.Lo)})
	}
	for _, ic := range e.ICons {
		out.ICons = append(out.ICons, &sement.ICons{Left: sub(ic.Left), Relation: ic.Relation, Right: sub(ic.Right)})
	}

	for _, v := range out.ReferencedVariables() {
		if _, ok := out.Variables[v]; !ok {
			out.Variables[v] = map[string]string{}
		}
	}

	return out
}

func (o options) representative(class sement.Equality) string {
	for _, v := range class {
		if o.prefer[v] {
			return v
		}
	}

	return Representative(class)
}

// mergeProperties copies props and folds each class onto its representative.
// Members are merged in class order, so later members win on a shared feature.
func mergeProperties(props sement.Properties, classes []sement.Equality, reps map[string]string) sement.Properties {
	out := props.Copy()
	for _, class := range classes {
		rep := reps[class[0]]
		merged := make(map[string]string)
		for _, v := range class {
			for k, val := range props[v] {
				merged[k] = val
			}
			delete(out, v)
		}
		out[rep] = merged
	}

	return out
}
