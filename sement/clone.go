// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Deep copies of elements and their parts.
// Determinism:
//   - Clone preserves list orders exactly; maps are copied key by key.
// AI-HINT (file):
//   - Clone is the only sanctioned way to get an Element that may be edited in place.

package sement

// Clone returns a deep copy: new EPs, constraints, equalities, slot table and
// property maps. Top and Index are copied by value.
//
// Complexity: O(|Rels|·args + |HCons| + |ICons| + Σ|Eqs| + Σ|props|).
func (e *Element) Clone() *Element {
	clone := &Element{
		Top:       e.Top,
		Index:     e.Index,
		Rels:      make([]*EP, len(e.Rels)),
		Slots:     CopySlots(e.Slots),
		Eqs:       CopyEqs(e.Eqs),
		HCons:     make([]*HCons, len(e.HCons)),
		ICons:     make([]*ICons, len(e.ICons)),
		Variables: e.Variables.Copy(),
	}

	var i int
	for i = range e.Rels {
		clone.Rels[i] = NewEP(e.Rels[i].Predicate, e.Rels[i].Label, e.Rels[i].Args)
	}
	for i = range e.HCons {
		hc := *e.HCons[i]
		clone.HCons[i] = &hc
	}
	for i = range e.ICons {
		ic := *e.ICons[i]
		clone.ICons[i] = &ic
	}

	return clone
}

// CopySlots returns an independent slot table; a nil table yields an empty one.
func CopySlots(slots map[string]string) map[string]string {
	out := make(map[string]string, len(slots))
	for role, v := range slots {
		out[role] = v
	}

	return out
}

// CopyEqs copies the equality list and every equality in it.
func CopyEqs(eqs []Equality) []Equality {
	out := make([]Equality, len(eqs))
	for i, eq := range eqs {
		out[i] = append(Equality(nil), eq...)
	}

	return out
}

// Copy returns a two-level copy of the property map.
func (p Properties) Copy() Properties {
	out := make(Properties, len(p))
	for v, props := range p {
		inner := make(map[string]string, len(props))
		for k, val := range props {
			inner[k] = val
		}
		out[v] = inner
	}

	return out
}
