// SPDX-License-Identifier: MIT
//
// File: fingerprint.go
// Role: Renaming-invariant summaries of the positions a variable occupies.
// Determinism:
//   - Fingerprints are sorted and duplicate-free.

package compare

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/semalg/sement"
)

// Synthetic fingerprint labels for the hook.
const (
	TopLabel   = "TOP"
	IndexLabel = "INDEX"
)

var (
	// ErrUnresolved indicates an element with pending equalities was compared.
	ErrUnresolved = errors.New("compare: element has pending equalities")

	// ErrSearchLimit indicates the bijection search gave up.
	ErrSearchLimit = errors.New("compare: bijection search limit exceeded")
)

// Fingerprints maps every variable referenced by e's hook, EPs and
// constraints to its sorted set of role labels. Variables that only occur in
// constraints have an empty fingerprint.
func Fingerprints(e *sement.Element) (map[string][]string, error) {
	if !e.Resolved() {
		return nil, ErrUnresolved
	}

	return fingerprints(e, true, false), nil
}

// fingerprints builds the label sets. withIndex adds INDEX; withConstraints
// adds "<relation>.HI"/".LO" and ".LEFT"/".RIGHT" labels, which only the
// isomorphism search uses to split buckets further.
func fingerprints(e *sement.Element, withIndex, withConstraints bool) map[string][]string {
	sets := make(map[string]map[string]struct{})
	add := func(v, label string) {
		if v == "" {
			return
		}
		set, ok := sets[v]
		if !ok {
			set = make(map[string]struct{})
			sets[v] = set
		}
		if label != "" {
			set[label] = struct{}{}
		}
	}

	add(e.Top, TopLabel)
	if withIndex {
		add(e.Index, IndexLabel)
	}
	for _, ep := range e.Rels {
		add(ep.Label, ep.Predicate+"."+sement.RoleLabel)
		for role, v := range ep.Args {
			if role == sement.RoleCarg {
				continue
			}
			add(v, ep.Predicate+"."+role)
		}
	}
	for _, hc := range e.HCons {
		if withConstraints {
			add(hc.Hi, hc.Relation+".HI")
			add(hc.Lo, hc.Relation+".LO")
		} else {
			add(hc.Hi, "")
			add(hc.Lo, "")
		}
	}
	for _, ic := range e.ICons {
		if withConstraints {
			add(ic.Left, ic.Relation+".LEFT")
			add(ic.Right, ic.Relation+".RIGHT")
		} else {
			add(ic.Left, "")
			add(ic.Right, "")
		}
	}

	out := make(map[string][]string, len(sets))
	for v, set := range sets {
		labels := make([]string, 0, len(set))
		for l := range set {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		out[v] = labels
	}

	return out
}

// key joins a fingerprint into a comparable string.
func key(fp []string) string {
	return strings.Join(fp, " ")
}
