// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Structural invariant checks that report every violation at once.

package sement

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/semalg/variable"
)

// Validate checks the structural invariants of e and returns all violations
// as a *multierror.Error whose entries wrap ErrInvalid, or nil.
//
// Checked:
//   - Top, Index and every EP label are well-formed variables.
//   - EPs are non-nil and have a predicate.
//   - Slot keys never include CARG, nor the intrinsic role of a
//     non-quantifier element whose intrinsic is that slot's variable.
//   - Equalities have at least two members.
//   - On resolved elements, every referenced variable has a Variables entry.
//
// Linguistic well-formedness (e.g. unfilled required slots) is not checked.
func (e *Element) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}

	if err := variable.Valid(e.Top); err != nil {
		fail("top: %v", err)
	}
	if err := variable.Valid(e.Index); err != nil {
		fail("index: %v", err)
	}

	for i, ep := range e.Rels {
		if ep == nil {
			fail("rels[%d] is nil", i)
			continue
		}
		if ep.Predicate == "" {
			fail("rels[%d] has no predicate", i)
		}
		if err := variable.Valid(ep.Label); err != nil {
			fail("rels[%d] %s label: %v", i, ep.Predicate, err)
		}
	}

	for role, v := range e.Slots {
		if role == RoleCarg {
			fail("slot %s is not allowed", RoleCarg)
			continue
		}
		if role != RoleIntrinsic {
			continue
		}
		if owner := e.EPByIntrinsic(v); owner != nil && !IsQuantifierPredicate(owner.Predicate) {
			fail("slot %s exposes the intrinsic of non-quantifier %s", role, owner.Predicate)
		}
	}

	for i, eq := range e.Eqs {
		if len(eq) < 2 {
			fail("eqs[%d] has %d member(s)", i, len(eq))
		}
	}

	if e.Resolved() {
		for _, v := range e.ReferencedVariables() {
			if _, ok := e.Variables[v]; !ok {
				fail("variable %s has no properties entry", v)
			}
		}
	}

	return result.ErrorOrNil()
}
