// SPDX-License-Identifier: MIT

// Package codec reads and writes semantic elements in SimpleMRS notation
// extended with two blocks on the top-level structure:
//
//	EQS: < x4 eq x8 h1 eq h3 eq h7 >
//	SLOTS: < ARG1: x2 BODY: h6 >
//
// Equality groups are runs of variables joined by "eq"; groups are separated
// by whitespace or commas. Slots are "ROLE: variable" pairs, commas optional.
//
// Decoding accepts TOP or LTOP for the top handle, variable property blocks
// ("x2 [ x PERS: 3 NUM: sg ]"), quoted predicates and surface strings, and
// skips surface alignments such as <0:3>, <@1> or <1 2>. Predicates are
// normalized: lower-cased with surrounding quotes and a trailing "_rel"
// removed. Malformed text yields a *SyntaxError carrying the line and column.
//
// Encoding writes roles and properties in the conventional order (LBL, ARG0,
// ARG1, ... and PERS, NUM, GEND, ...) and emits each variable's properties
// at its first occurrence only. Decode(Encode(e)) is isomorphic to e.
package codec
