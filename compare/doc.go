// SPDX-License-Identifier: MIT

// Package compare decides whether two resolved semantic elements mean the same
// thing up to variable renaming, and reports where they differ.
//
// Every variable is summarised by its fingerprint: the sorted set of
// "<predicate>.<ROLE>" and "<predicate>.LBL" positions it fills, plus "TOP"
// and "INDEX" for the element's hook. Fingerprints rarely collide within an
// element, so IsIsomorphic first pairs variables by fingerprint, splits
// shared fingerprints further by the fingerprints of each variable's
// neighbours, and only searches for a bijection among variables that still
// look alike. The search is bounded (see WithSearchLimit).
//
// The structural test follows the graph reachable from a root placed above
// TOP: EPs, handle constraints, individual constraints and, unless disabled,
// variable properties. The index is not part of that graph; it is reported by
// Diff through the INDEX fingerprint label. Slot tables must expose the same
// roles, the variables filling them may differ.
//
// Diff produces three independent partitions (slots, equivalence classes and
// handle constraints) of gold-only, actual-only and overlapping entries. It is
// diagnostic only and does not affect IsIsomorphic.
//
// Both functions require resolved input and fail with ErrUnresolved otherwise;
// ResolveAndCompare resolves first.
package compare
