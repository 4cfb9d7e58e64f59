// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: EP, HCons, ICons, Equality and Element types plus small read-only queries.
// Determinism:
//   - ReferencedVariables and SlotRoles return stable orders.

package sement

import (
	"errors"
	"sort"
	"strings"
)

// Well-known role names and relations.
const (
	RoleIntrinsic = "ARG0"
	RoleCarg      = "CARG"
	RoleRstr      = "RSTR"
	RoleBody      = "BODY"
	RoleLabel     = "LBL"

	RelationQeq = "qeq"

	// QuantifierSuffix marks quantifier predicates, e.g. "_the_q" or "udef_q".
	QuantifierSuffix = "_q"
)

// ErrInvalid indicates an Element that breaks a structural invariant.
var ErrInvalid = errors.New("sement: invalid element")

// EP is an elementary predication: a label handle, a predicate and its arguments.
//
// Args maps role names to variables, except CARG whose value is a literal string.
type EP struct {
	Predicate string
	Label     string
	Args      map[string]string
}

// NewEP builds an EP with its own copy of args.
func NewEP(predicate, label string, args map[string]string) *EP {
	cp := make(map[string]string, len(args))
	for role, v := range args {
		cp[role] = v
	}

	return &EP{Predicate: predicate, Label: label, Args: cp}
}

// Intrinsic returns the intrinsic (ARG0) argument, or "" if absent.
func (ep *EP) Intrinsic() string {
	return ep.Args[RoleIntrinsic]
}

// Carg returns the CARG constant and whether the EP has one.
func (ep *EP) Carg() (string, bool) {
	v, ok := ep.Args[RoleCarg]

	return v, ok
}

// IsQuantifier reports whether the EP carries a restriction (RSTR) role.
func (ep *EP) IsQuantifier() bool {
	_, ok := ep.Args[RoleRstr]

	return ok
}

// Roles returns the EP's role names sorted alphabetically.
func (ep *EP) Roles() []string {
	roles := make([]string, 0, len(ep.Args))
	for role := range ep.Args {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	return roles
}

// IsQuantifierPredicate reports whether a predicate name denotes a quantifier.
func IsQuantifierPredicate(predicate string) bool {
	return strings.HasSuffix(predicate, QuantifierSuffix)
}

// HCons is a handle constraint "Hi qeq Lo".
type HCons struct {
	Hi       string
	Relation string
	Lo       string
}

// Qeq builds a qeq handle constraint.
func Qeq(hi, lo string) *HCons {
	return &HCons{Hi: hi, Relation: RelationQeq, Lo: lo}
}

// ICons is an individual constraint; semalg threads it through untouched.
type ICons struct {
	Left     string
	Relation string
	Right    string
}

// Equality is a set of two or more variables asserted equal. Members are kept
// in insertion order without duplicates; the order is only used to break ties
// between equally specific variables during resolution.
type Equality []string

// NewEquality builds an Equality from vars, dropping repeats.
func NewEquality(vars ...string) Equality {
	eq := make(Equality, 0, len(vars))
	for _, v := range vars {
		if !eq.Contains(v) {
			eq = append(eq, v)
		}
	}

	return eq
}

// Contains reports whether v is a member.
func (eq Equality) Contains(v string) bool {
	for _, m := range eq {
		if m == v {
			return true
		}
	}

	return false
}

// Properties maps variable → feature → value.
type Properties map[string]map[string]string

// Element is a Semantic Element. See the package documentation.
type Element struct {
	// Top is the local top handle (LTOP) of the element.
	Top string

	// Index is the element's distinguished variable.
	Index string

	// Rels is the bag of elementary predications; order carries no meaning.
	Rels []*EP

	// Slots maps open role names to the variables that fill them.
	Slots map[string]string

	// Eqs lists pending equalities; empty once resolved.
	Eqs []Equality

	// HCons lists qeq handle constraints.
	HCons []*HCons

	// ICons lists individual constraints.
	ICons []*ICons

	// Variables holds per-variable properties.
	Variables Properties
}

// Resolved reports whether the element has no pending equalities.
func (e *Element) Resolved() bool {
	return len(e.Eqs) == 0
}

// SlotRoles returns the slot keys sorted alphabetically.
func (e *Element) SlotRoles() []string {
	roles := make([]string, 0, len(e.Slots))
	for role := range e.Slots {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	return roles
}

// ReferencedVariables lists every variable used by the hook, EPs (labels and
// non-CARG arguments), handle constraints, individual constraints, slots and
// equalities, each once, in that order of first appearance. EP roles are
// visited alphabetically.
func (e *Element) ReferencedVariables() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	add(e.Top)
	add(e.Index)
	for _, ep := range e.Rels {
		if ep == nil {
			continue
		}
		add(ep.Label)
		for _, role := range ep.Roles() {
			if role == RoleCarg {
				continue
			}
			add(ep.Args[role])
		}
	}
	for _, hc := range e.HCons {
		add(hc.Hi)
		add(hc.Lo)
	}
	for _, ic := range e.ICons {
		add(ic.Left)
		add(ic.Right)
	}
	for _, role := range e.SlotRoles() {
		add(e.Slots[role])
	}
	for _, eq := range e.Eqs {
		for _, v := range eq {
			add(v)
		}
	}

	return out
}

// EPByIntrinsic returns the first EP whose ARG0 is v, or nil.
func (e *Element) EPByIntrinsic(v string) *EP {
	for _, ep := range e.Rels {
		if ep != nil && ep.Intrinsic() == v {
			return ep
		}
	}

	return nil
}
