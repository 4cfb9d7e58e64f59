// SPDX-License-Identifier: MIT

// Package sement defines the Semantic Element (SEMENT): a partially composed
// flat semantic graph with open argument slots and not yet merged variable
// equalities.
//
// An Element is
//
//	{ Top, Index, Rels, Slots, Eqs, HCons, ICons, Variables }
//
// where Rels are elementary predications (EP), HCons are qeq handle
// constraints, ICons are individual constraints threaded through unchanged,
// Slots map role names to variables still open for composition, Eqs hold
// pending variable equalities and Variables map each variable to its
// morphosyntactic properties.
//
// Elements are values: every semalg operation returns a new Element and never
// writes into its inputs. EP and HCons pointers may be shared between an
// input and an output, so they must not be mutated once an Element holding
// them has been handed out. Clone is the one way to obtain a copy that may be
// edited in place.
//
// Errors:
//
//	ErrInvalid  an element violates a structural invariant (see Validate).
package sement
