// SPDX-License-Identifier: MIT

// Package variable defines the variable model shared by every semalg package
// and the Labeler that allocates fresh variable names.
//
// What:
//
//   - A variable is a plain string "<tag><n>", e.g. "x4" or "h12". The tag is a
//     single letter from the type hierarchy below; n is a decimal suffix.
//   - Type tags form a specificity order used when an equivalence class of
//     variables has to be collapsed into one representative:
//
//     u            rank 0 (unspecific)
//     i, p         rank 1 (i: e or x, p: h or x)
//     e, x, h      rank 2 (event, instance, handle)
//
//   - Labeler hands out "<tag><n>" names from ONE counter shared across all tags,
//     so allocating an x and then an h yields consecutive numbers (x1, h2).
//
// Concurrency:
//
//   - Type/Rank/Valid are pure functions.
//   - Labeler uses an atomic counter, but the allocation discipline is
//     single-writer: one generation session owns one Labeler. Independent
//     sessions must use independent Labelers.
//
// Errors:
//
//   - ErrBadVariable  a string is not "<known tag><digits>".
package variable
