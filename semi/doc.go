// SPDX-License-Identifier: MIT

// Package semi is the grammar-side collaborator of the algebra: it answers
// "which roles, of which variable types, does this predicate take?".
//
// Lookup is the single interface the algebra depends on. Index is the
// in-memory implementation, filled either programmatically (Add) or from the
// predicates section of a SEM-I (semantic interface) file:
//
//	predicates:
//	  _give_v_1 : ARG0 e, ARG1 i, ARG2 u, [ ARG3 i ].
//	  _the_q : ARG0 x, RSTR h, BODY h.
//	  named : ARG0 x, CARG string.
//
// Config loads the YAML file that points at the grammar and its SEM-I.
//
// Errors:
//
//	ErrNotFound       predicate unknown to the grammar.
//	ErrSyntax         malformed SEM-I synopsis line.
//	ErrMissingConfig  required configuration key absent.
package semi
