// SPDX-License-Identifier: MIT

// Package algebra builds semantic elements from single predicates and composes
// them pairwise.
//
// A Session owns the state one generation run needs: the variable labeler,
// the signature lookup and a logger. Base elements come from
// Session.CreateBase and Session.CreateCARG (or the part-of-speech wrappers
// Noun, Verb, ...). Elements are combined with five operators:
//
//	NonScopalArgumentHook  modifier + head, hook from the argument
//	NonScopalFunctorHook   head + dependent, hook from the functor
//	ScopalArgumentIndex    scopal functor, index from the argument
//	ScopalFunctorIndex     scopal functor, index from the functor
//	ScopalQuantifier       quantifier + restriction
//
// Operators are pure. They never resolve equalities and never modify their
// inputs; EPs and constraints may be shared between input and output.
//
// Session.PrepareForGeneration finishes a composed element for a grammar:
// non-event indices are quantified and wrapped, a global top is added, handle
// constraints are coerced to handles and the result is resolved.
//
// A Session is single-writer. Run concurrent generations on separate sessions.
package algebra
