// SPDX-License-Identifier: MIT
//
// File: refine.go
// Role: Neighbourhood refinement of fingerprint buckets before the bijection search.
// Determinism:
//   - Colours are ranks in the sorted set of signatures of both elements, so
//     equal colours on the two sides always denote equal signatures.

package compare

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/variable"
)

// edge is one labelled link from a variable to a neighbour.
type edge struct {
	label string
	to    string
}

// adjacency lists, per variable, the variables sharing an EP or a constraint with it.
type adjacency map[string][]edge

func newAdjacency(e *sement.Element) adjacency {
	adj := make(adjacency)
	link := func(from, to, label string) {
		if from == "" || to == "" {
			return
		}
		adj[from] = append(adj[from], edge{label: label, to: to})
	}

	for _, ep := range e.Rels {
		roles := []string{sement.RoleLabel}
		vals := []string{ep.Label}
		for _, role := range ep.Roles() {
			if role == sement.RoleCarg {
				continue
			}
			roles = append(roles, role)
			vals = append(vals, ep.Args[role])
		}
		for i := range vals {
			for j := range vals {
				if i != j {
					link(vals[i], vals[j], ep.Predicate+"."+roles[i]+">"+roles[j])
				}
			}
		}
	}
	for _, hc := range e.HCons {
		link(hc.Hi, hc.Lo, hc.Relation+".HI>LO")
		link(hc.Lo, hc.Hi, hc.Relation+".LO>HI")
	}
	for _, ic := range e.ICons {
		link(ic.Left, ic.Right, ic.Relation+".LEFT>RIGHT")
		link(ic.Right, ic.Left, ic.Relation+".RIGHT>LEFT")
	}

	return adj
}

// refine colours the variables of a and b. Start colours combine the type
// tag, the fingerprint and, when props is set, the variable's properties.
// Each round appends the sorted colours of every labelled neighbour, until
// neither side gains a colour class. Variables of a and b that end with
// different colours cannot correspond in any isomorphism.
//
// Complexity: O(V · (V + Σdeg·log deg)) in the worst case; a couple of
// rounds for ordinary elements.
func refine(a, b *sement.Element, fa, fb map[string][]string, adjA, adjB adjacency, props bool) (map[string]string, map[string]string) {
	start := func(e *sement.Element, fps map[string][]string) map[string]string {
		out := make(map[string]string, len(fps))
		for v, fp := range fps {
			sig := variable.Type(v) + "|" + key(fp)
			if props {
				sig += "|" + propertyKey(e.Variables[v])
			}
			out[v] = sig
		}
		return out
	}
	ca, cb := compress(start(a, fa), start(b, fb))

	na, nb := classes(ca), classes(cb)
	for round := 0; round < len(ca); round++ {
		nextA, nextB := compress(signatures(ca, adjA), signatures(cb, adjB))
		ma, mb := classes(nextA), classes(nextB)
		ca, cb = nextA, nextB
		if ma == na && mb == nb {
			break
		}
		na, nb = ma, mb
	}

	return ca, cb
}

// signatures extends every colour with the multiset of neighbour colours.
func signatures(colours map[string]string, adj adjacency) map[string]string {
	out := make(map[string]string, len(colours))
	for v, c := range colours {
		parts := make([]string, 0, len(adj[v]))
		for _, e := range adj[v] {
			parts = append(parts, e.label+"="+colours[e.to])
		}
		sort.Strings(parts)
		out[v] = c + "{" + strings.Join(parts, ",") + "}"
	}

	return out
}

// compress replaces the signatures of both sides with short shared colour names.
func compress(a, b map[string]string) (map[string]string, map[string]string) {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		seen[s] = struct{}{}
	}
	sigs := make([]string, 0, len(seen))
	for s := range seen {
		sigs = append(sigs, s)
	}
	sort.Strings(sigs)
	names := make(map[string]string, len(sigs))
	for i, s := range sigs {
		names[s] = "c" + strconv.Itoa(i)
	}

	rename := func(m map[string]string) map[string]string {
		out := make(map[string]string, len(m))
		for v, s := range m {
			out[v] = names[s]
		}
		return out
	}

	return rename(a), rename(b)
}

func classes(colours map[string]string) int {
	set := make(map[string]struct{}, len(colours))
	for _, c := range colours {
		set[c] = struct{}{}
	}

	return len(set)
}

// propertyKey renders a property map in sorted key order.
func propertyKey(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + props[k]
	}

	return strings.Join(parts, ",")
}
