// Package semalg composes flat semantic representations the way a
// grammar-based generator expects them.
//
// A SEMENT is a bag of elementary predications plus a hook (top handle and
// index), named slots still open for composition, handle constraints and a
// list of pending variable equalities. Composing two SEMENTs never rewrites
// variables in place; it only records equalities, which are applied later
// in one pass.
//
// What's inside:
//
//	variable/   variable names, type tags, ranks and the shared labeler
//	sement/     EP, HCons, ICons, Equality and Element, deep Clone, Validate
//	semi/       SEM-I signatures, file loading with includes, YAML config
//	algebra/    base constructors, the five composition operators and
//	            PrepareForGeneration
//	resolve/    equivalence classes, representatives and substitution
//	compare/    fingerprints, isomorphism and structural diff reports
//	codec/      the bracketed text notation: Decode, Encode
//	logger/     console zap loggers
//	cmd/sement  command-line front end
//
// Quick example, "the cookie":
//
//	[ TOP: h5 INDEX: x1
//	  RELS: < [ _the_q LBL: h4 ARG0: x1 RSTR: h2 BODY: h3 ]
//	          [ _cookie_n_1 LBL: h7 ARG0: x1 ] >
//	  HCONS: < h2 qeq h7 >
//	  SLOTS: < BODY: h3 > ]
//
// The examples/ directory walks through a full sentence.
//
//	go get github.com/katalvlaran/semalg
package semalg
