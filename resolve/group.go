// SPDX-License-Identifier: MIT
//
// File: group.go
// Role: Equivalence classes over pending equalities and representative choice.
// Determinism:
//   - Classes are returned in order of first mention; members keep first-mention order.
//   - Representative ties are broken by class order, never by map iteration.

package resolve

import (
	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/variable"
)

// Group computes the transitive closure of eqs. Each equality is unioned with
// every class built so far that shares a member; the merged class takes the
// place of the earliest class it absorbed.
//
// Complexity: O(E·C·k) for E equalities, C classes and k class size; inputs are
// a handful of small sets per composition.
func Group(eqs []sement.Equality) []sement.Equality {
	var classes []sement.Equality
	for _, eq := range eqs {
		if len(eq) == 0 {
			continue
		}
		target := -1
		kept := make([]sement.Equality, 0, len(classes)+1)
		for _, class := range classes {
			if !overlaps(class, eq) {
				kept = append(kept, class)
				continue
			}
			if target < 0 {
				target = len(kept)
				kept = append(kept, class)
				continue
			}
			kept[target] = union(kept[target], class)
		}
		if target < 0 {
			kept = append(kept, sement.NewEquality(eq...))
		} else {
			kept[target] = union(kept[target], eq)
		}
		classes = kept
	}

	return classes
}

// Representative returns the member of class with the highest type rank. The
// first such member in class order wins. An empty class yields "".
func Representative(class sement.Equality) string {
	best, bestRank := "", -2
	for _, v := range class {
		if r := variable.RankOf(v); r > bestRank {
			best, bestRank = v, r
		}
	}

	return best
}

// Representatives maps every member of every class to its representative.
func Representatives(classes []sement.Equality) map[string]string {
	out := make(map[string]string)
	for _, class := range classes {
		rep := Representative(class)
		for _, v := range class {
			out[v] = rep
		}
	}

	return out
}

func overlaps(a, b sement.Equality) bool {
	for _, v := range b {
		if a.Contains(v) {
			return true
		}
	}

	return false
}

// union returns a new class holding a followed by the members of b not in a.
func union(a, b sement.Equality) sement.Equality {
	out := make(sement.Equality, len(a), len(a)+len(b))
	copy(out, a)
	for _, v := range b {
		if !out.Contains(v) {
			out = append(out, v)
		}
	}

	return out
}
