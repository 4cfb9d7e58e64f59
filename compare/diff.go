// SPDX-License-Identifier: MIT
//
// File: diff.go
// Role: Three-way diff reports over slots, equivalence classes and handle constraints.
// Determinism:
//   - Entries are sorted by fingerprint size (largest first), then by first
//     label, then by the remaining fields.

package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/semalg/sement"
)

// Entry is one matched or unmatched item of a partition.
type Entry struct {
	// Role is the slot role for slot entries and the relation for handle
	// constraints; empty for classes.
	Role string

	// Fingerprint identifies the item. For handle constraints it is the hi
	// fingerprint followed by the lo fingerprint.
	Fingerprint []string

	// Gold and Actual name the item on each side ("" when absent). Handle
	// constraints are written "hi qeq lo".
	Gold, Actual string
}

// Partition splits items into those found on both sides and those found on one.
type Partition struct {
	Overlap    []Entry
	GoldOnly   []Entry
	ActualOnly []Entry
}

// Clean reports whether every item matched.
func (p Partition) Clean() bool {
	return len(p.GoldOnly) == 0 && len(p.ActualOnly) == 0
}

// Report is the result of Diff.
type Report struct {
	Slots   Partition
	Classes Partition
	HCons   Partition
}

// Clean reports whether all three partitions matched completely.
func (r *Report) Clean() bool {
	return r.Slots.Clean() && r.Classes.Clean() && r.HCons.Clean()
}

// String renders one summary line per partition followed by its unmatched entries.
func (r *Report) String() string {
	var b strings.Builder
	write := func(name string, p Partition) {
		fmt.Fprintf(&b, "%s: %d overlap, %d gold-only, %d actual-only\n",
			name, len(p.Overlap), len(p.GoldOnly), len(p.ActualOnly))
		for _, e := range p.GoldOnly {
			fmt.Fprintf(&b, "  gold-only   %s\n", e.describe(e.Gold))
		}
		for _, e := range p.ActualOnly {
			fmt.Fprintf(&b, "  actual-only %s\n", e.describe(e.Actual))
		}
	}
	write("slots", r.Slots)
	write("classes", r.Classes)
	write("hcons", r.HCons)

	return b.String()
}

func (e Entry) describe(name string) string {
	fp := "[ " + strings.Join(e.Fingerprint, " ") + " ]"
	if e.Role != "" {
		return e.Role + " " + name + " " + fp
	}

	return name + " " + fp
}

// Diff compares gold against actual. Both must be resolved.
func Diff(gold, actual *sement.Element) (*Report, error) {
	fg, err := Fingerprints(gold)
	if err != nil {
		return nil, err
	}
	fa, err := Fingerprints(actual)
	if err != nil {
		return nil, err
	}

	return &Report{
		Slots:   partition(slotItems(gold, fg), slotItems(actual, fa)),
		Classes: partition(classItems(fg), classItems(fa)),
		HCons:   partition(hconsItems(gold, fg), hconsItems(actual, fa)),
	}, nil
}

// item is one side's candidate for matching; items with equal match strings pair up.
type item struct {
	match string
	entry Entry
}

// slotItems matches slots on the filled variable's fingerprint alone; the
// role is carried for display.
func slotItems(e *sement.Element, fps map[string][]string) []item {
	items := make([]item, 0, len(e.Slots))
	for _, role := range e.SlotRoles() {
		v := e.Slots[role]
		fp := fps[v]
		items = append(items, item{
			match: key(fp),
			entry: Entry{Role: role, Fingerprint: fp, Gold: v},
		})
	}

	return items
}

func classItems(fps map[string][]string) []item {
	vars := make([]string, 0, len(fps))
	for v := range fps {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	items := make([]item, 0, len(vars))
	for _, v := range vars {
		items = append(items, item{
			match: key(fps[v]),
			entry: Entry{Fingerprint: fps[v], Gold: v},
		})
	}

	return items
}

func hconsItems(e *sement.Element, fps map[string][]string) []item {
	items := make([]item, 0, len(e.HCons))
	for _, hc := range e.HCons {
		hi, lo := fps[hc.Hi], fps[hc.Lo]
		fp := make([]string, 0, len(hi)+len(lo))
		fp = append(append(fp, hi...), lo...)
		items = append(items, item{
			match: key(hi) + "|" + hc.Relation + "|" + key(lo),
			entry: Entry{Role: hc.Relation, Fingerprint: fp, Gold: hc.Hi + " " + hc.Relation + " " + hc.Lo},
		})
	}

	return items
}

// partition pairs gold and actual items with equal match strings one to one.
// Items are built with the name in Gold; actual names move to Actual here.
func partition(gold, actual []item) Partition {
	pending := make(map[string][]Entry)
	for _, it := range actual {
		e := it.entry
		e.Actual, e.Gold = e.Gold, ""
		pending[it.match] = append(pending[it.match], e)
	}

	var p Partition
	for _, it := range gold {
		queue := pending[it.match]
		if len(queue) == 0 {
			p.GoldOnly = append(p.GoldOnly, it.entry)
			continue
		}
		e := it.entry
		e.Actual = queue[0].Actual
		pending[it.match] = queue[1:]
		p.Overlap = append(p.Overlap, e)
	}
	for _, it := range actual {
		queue := pending[it.match]
		if len(queue) == 0 {
			continue
		}
		p.ActualOnly = append(p.ActualOnly, queue[0])
		pending[it.match] = queue[1:]
	}

	sortEntries(p.Overlap)
	sortEntries(p.GoldOnly)
	sortEntries(p.ActualOnly)

	return p
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if len(a.Fingerprint) != len(b.Fingerprint) {
			return len(a.Fingerprint) > len(b.Fingerprint)
		}
		if fa, fb := first(a.Fingerprint), first(b.Fingerprint); fa != fb {
			return fa < fb
		}
		if ka, kb := key(a.Fingerprint), key(b.Fingerprint); ka != kb {
			return ka < kb
		}
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		if a.Gold != b.Gold {
			return a.Gold < b.Gold
		}

		return a.Actual < b.Actual
	})
}

func first(fp []string) string {
	if len(fp) == 0 {
		return ""
	}

	return fp[0]
}
