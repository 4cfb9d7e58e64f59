// SPDX-License-Identifier: MIT

// Package resolve collapses pending equalities of a sement.Element into single
// representative variables.
//
// Resolution runs in three steps:
//
//  1. Group: the pending equalities are merged by iterative union into
//     disjoint classes. Classes and their members keep first-mention order.
//  2. Representative: each class is represented by its most specific member
//     (rank u < i = p < e = x = h); ties go to the member mentioned first.
//  3. Substitution: top, index, EP labels and arguments, handle constraints
//     and individual constraints are rewritten to representatives, and the
//     properties of every class are merged onto its representative.
//
// Resolve never mutates its input. An element without pending equalities is
// returned as is, so resolving twice is the same as resolving once.
//
// Slots are not rewritten: by the time an element is resolved every slot that
// was going to be plugged has already been consumed by a composition.
package resolve
