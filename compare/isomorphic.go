// SPDX-License-Identifier: MIT
//
// File: isomorphic.go
// Role: Variable-renaming isomorphism with refined buckets and pruned, bounded backtracking.
// Determinism:
//   - Buckets and candidates are visited in sorted order; the step count for a
//     given pair of inputs is always the same.

package compare

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/semalg/resolve"
	"github.com/katalvlaran/semalg/sement"
)

// DefaultSearchLimit bounds the number of tentative assignments IsIsomorphic
// tries inside ambiguous buckets.
const DefaultSearchLimit = 100000

// ErrBadSearchLimit indicates WithSearchLimit was given a non-positive bound.
var ErrBadSearchLimit = errors.New("compare: search limit must be positive")

type options struct {
	properties bool
	limit      int
}

// Option configures IsIsomorphic.
type Option func(*options)

// WithoutProperties ignores variable properties.
func WithoutProperties() Option {
	return func(o *options) {
		o.properties = false
	}
}

// WithSearchLimit bounds the bijection search. Panics if n <= 0.
func WithSearchLimit(n int) Option {
	if n <= 0 {
		panic(ErrBadSearchLimit.Error())
	}
	return func(o *options) {
		o.limit = n
	}
}

func newOptions(opts []Option) options {
	o := options{properties: true, limit: DefaultSearchLimit}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// IsIsomorphic reports whether a and b have the same structure under some
// renaming of variables and expose the same slot roles.
//
// Errors: ErrUnresolved if either input has pending equalities,
// ErrSearchLimit if the bijection search exceeds its bound.
//
// Variables are first paired by fingerprint, refined by the colours of their
// neighbours. Only variables left in shared buckets (symmetric parts of the
// element) are searched, breadth-first, rejecting a choice as soon as an EP
// or constraint around it has no counterpart in b.
//
// Complexity: O(V·R) for refinement, R = total EP args; ambiguous buckets add
// at most the search limit in steps.
func IsIsomorphic(a, b *sement.Element, opts ...Option) (bool, error) {
	if !a.Resolved() || !b.Resolved() {
		return false, ErrUnresolved
	}
	o := newOptions(opts)

	if !sameRoles(a.SlotRoles(), b.SlotRoles()) {
		return false, nil
	}
	if len(a.Rels) != len(b.Rels) || len(a.HCons) != len(b.HCons) || len(a.ICons) != len(b.ICons) {
		return false, nil
	}

	fa := fingerprints(a, false, true)
	fb := fingerprints(b, false, true)
	if len(fa) != len(fb) {
		return false, nil
	}

	adj := newAdjacency(a)
	ca, cb := refine(a, b, fa, fb, adj, newAdjacency(b), o.properties)
	ga, gb := buckets(ca), buckets(cb)
	if len(ga) != len(gb) {
		return false, nil
	}
	s := &search{
		a:       a,
		b:       b,
		opts:    o,
		mapping: make(map[string]string, len(fa)),
		used:    make(map[string]bool, len(fb)),
		cands:   make(map[string][]string),
		want:    newShape(b, nil),
		touches: touching(a),
	}
	var ambiguous []string
	keys := make([]string, 0, len(ga))
	for k := range ga {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		va, vb := ga[k], gb[k]
		if len(va) != len(vb) {
			return false, nil
		}
		if len(va) == 1 {
			s.mapping[va[0]] = vb[0]
			s.used[vb[0]] = true
			continue
		}
		for _, v := range va {
			s.cands[v] = vb
			ambiguous = append(ambiguous, v)
		}
	}
	sort.Strings(ambiguous)
	s.order = visitOrder(ambiguous, adj)

	return s.assign(0)
}

// ResolveAndCompare resolves both inputs, then tests isomorphism and builds
// the diff report.
func ResolveAndCompare(gold, actual *sement.Element, opts ...Option) (bool, *Report, error) {
	gold, actual = resolve.Resolve(gold), resolve.Resolve(actual)
	ok, err := IsIsomorphic(gold, actual, opts...)
	if err != nil {
		return false, nil, err
	}
	report, err := Diff(gold, actual)
	if err != nil {
		return false, nil, err
	}

	return ok, report, nil
}

// buckets groups variables by colour; members are sorted.
func buckets(colours map[string]string) map[string][]string {
	out := make(map[string][]string)
	for v, c := range colours {
		out[c] = append(out[c], v)
	}
	for _, vs := range out {
		sort.Strings(vs)
	}

	return out
}

func sameRoles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

type search struct {
	a, b    *sement.Element
	opts    options
	mapping map[string]string   // a variable → b variable
	used    map[string]bool     // b variables already taken
	cands   map[string][]string // ambiguous a variable → its bucket in b
	order   []string            // ambiguous a variables in visiting order
	steps   int
	want    shape             // b's structure, computed once
	touches map[string][]fact // a's EPs and constraints per variable
}

// assign extends the mapping with a choice for order[i].
func (s *search) assign(i int) (bool, error) {
	if i == len(s.order) {
		return s.matches(), nil
	}
	v := s.order[i]
	for _, w := range s.cands[v] {
		if s.used[w] {
			continue
		}
		s.steps++
		if s.steps > s.opts.limit {
			return false, ErrSearchLimit
		}
		s.mapping[v], s.used[w] = w, true
		if s.consistent(v, w) {
			ok, err := s.assign(i + 1)
			if ok || err != nil {
				return ok, err
			}
		}
		delete(s.mapping, v)
		s.used[w] = false
	}

	return false, nil
}

// visitOrder lists the ambiguous variables breadth-first over adj, so that
// most variables share an EP or a constraint with one visited before them
// and wrong choices are rejected early.
func visitOrder(ambiguous []string, adj adjacency) []string {
	pending := make(map[string]bool, len(ambiguous))
	for _, v := range ambiguous {
		pending[v] = true
	}
	order := make([]string, 0, len(ambiguous))
	for _, root := range ambiguous {
		if !pending[root] {
			continue
		}
		pending[root] = false
		queue := []string{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)

			var next []string
			for _, e := range adj[v] {
				if pending[e.to] {
					pending[e.to] = false
					next = append(next, e.to)
				}
			}
			sort.Strings(next)
			queue = append(queue, next...)
		}
	}

	return order
}

// consistent reports whether the tentative choice v → w can still lead to a
// match: properties agree and every EP or constraint around v whose
// variables are all mapped has a counterpart in b.
func (s *search) consistent(v, w string) bool {
	if s.opts.properties && !sameProperties(s.a.Variables[v], s.b.Variables[w]) {
		return false
	}
	for _, it := range s.touches[v] {
		k, ok := it.key(s.mapping)
		if !ok {
			continue
		}
		if it.in(s.want)[k] == 0 {
			return false
		}
	}

	return true
}

// matches checks the complete mapping against b.
func (s *search) matches() bool {
	if s.mapping[s.a.Top] != s.b.Top {
		return false
	}
	got := newShape(s.a, s.mapping)
	if !got.equal(s.want) {
		return false
	}
	if !s.opts.properties {
		return true
	}
	for va, vb := range s.mapping {
		if !sameProperties(s.a.Variables[va], s.b.Variables[vb]) {
			return false
		}
	}

	return true
}

// shape is the multiset form of an element's EPs and constraints with
// variables renamed through rename (nil keeps names).
type shape struct {
	rels, hcons, icons map[string]int
}

func newShape(e *sement.Element, rename map[string]string) shape {
	sh := shape{
		rels:  make(map[string]int, len(e.Rels)),
		hcons: make(map[string]int, len(e.HCons)),
		icons: make(map[string]int, len(e.ICons)),
	}
	keep := func(v string) (string, bool) {
		if r, ok := rename[v]; ok {
			return r, true
		}
		return v, true
	}
	for _, it := range facts(e) {
		k, _ := it.keyWith(keep)
		it.in(sh)[k]++
	}

	return sh
}

// fact is one EP, HCONS or ICONS of an element.
type fact struct {
	kind  int // factRel, factHCons or factICons
	ep    *sement.EP
	hcons *sement.HCons
	icons *sement.ICons
}

const (
	factRel = iota
	factHCons
	factICons
)

func facts(e *sement.Element) []fact {
	out := make([]fact, 0, len(e.Rels)+len(e.HCons)+len(e.ICons))
	for _, ep := range e.Rels {
		out = append(out, fact{kind: factRel, ep: ep})
	}
	for _, hc := range e.HCons {
		out = append(out, fact{kind: factHCons, hcons: hc})
	}
	for _, ic := range e.ICons {
		out = append(out, fact{kind: factICons, icons: ic})
	}

	return out
}

// touching indexes e's facts by the variables they mention.
func touching(e *sement.Element) map[string][]fact {
	out := make(map[string][]fact)
	for _, it := range facts(e) {
		seen := make(map[string]bool)
		for _, v := range it.variables() {
			if v != "" && !seen[v] {
				seen[v] = true
				out[v] = append(out[v], it)
			}
		}
	}

	return out
}

func (it fact) variables() []string {
	switch it.kind {
	case factRel:
		vs := []string{it.ep.Label}
		for role, v := range it.ep.Args {
			if role != sement.RoleCarg {
				vs = append(vs, v)
			}
		}
		return vs
	case factHCons:
		return []string{it.hcons.Hi, it.hcons.Lo}
	default:
		return []string{it.icons.Left, it.icons.Right}
	}
}

// in returns the multiset of sh holding facts of this kind.
func (it fact) in(sh shape) map[string]int {
	switch it.kind {
	case factRel:
		return sh.rels
	case factHCons:
		return sh.hcons
	default:
		return sh.icons
	}
}

// key renders the fact with variables renamed through mapping; ok is false
// while some variable is still unmapped.
func (it fact) key(mapping map[string]string) (string, bool) {
	return it.keyWith(func(v string) (string, bool) {
		r, ok := mapping[v]
		return r, ok
	})
}

func (it fact) keyWith(sub func(string) (string, bool)) (string, bool) {
	complete := true
	name := func(v string) string {
		if v == "" {
			return ""
		}
		r, ok := sub(v)
		complete = complete && ok
		return r
	}

	var parts []string
	switch it.kind {
	case factRel:
		parts = append(parts, it.ep.Predicate, name(it.ep.Label))
		for _, role := range it.ep.Roles() {
			val := it.ep.Args[role]
			if role != sement.RoleCarg {
				val = name(val)
			}
			parts = append(parts, role+"="+val)
		}
	case factHCons:
		parts = append(parts, name(it.hcons.Hi), it.hcons.Relation, name(it.hcons.Lo))
	default:
		parts = append(parts, name(it.icons.Left), it.icons.Relation, name(it.icons.Right))
	}
	if !complete {
		return "", false
	}

	return strings.Join(parts, "\x00"), true
}

func (s shape) equal(o shape) bool {
	return sameCounts(s.rels, o.rels) && sameCounts(s.hcons, o.hcons) && sameCounts(s.icons, o.icons)
}

func sameCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}

	return true
}

// sameProperties treats a missing entry as empty.
func sameProperties(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}

	return true
}
