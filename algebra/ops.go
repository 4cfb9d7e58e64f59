// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: The five composition operators.
// Determinism:
//   - Result lists are functor items, then argument items, then the new ones.
// AI-HINT (file):
//   - Inputs are never written to; EP and constraint pointers may be shared.
//   - Properties: functor entries overlaid by argument entries.

package algebra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/semalg/sement"
)

// NonScopalArgumentHook plugs argument into the functor's slot and takes the
// hook from the argument, as a modifier does with its head ("tasty cookie").
// The result keeps the argument's slots only.
func NonScopalArgumentHook(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	v, err := slotVariable(functor, slot)
	if err != nil {
		return nil, err
	}
	res := combine(functor, argument)
	res.Top, res.Index = argument.Top, argument.Index
	res.Eqs = append(res.Eqs,
		sement.NewEquality(functor.Top, argument.Top),
		sement.NewEquality(v, argument.Index))
	res.Slots = sement.CopySlots(argument.Slots)

	return res, nil
}

// NonScopalFunctorHook plugs argument into the functor's slot and keeps the
// functor's hook ("give" + "a cookie"). The argument's slots are dropped.
func NonScopalFunctorHook(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	v, err := slotVariable(functor, slot)
	if err != nil {
		return nil, err
	}
	res := combine(functor, argument)
	res.Top, res.Index = functor.Top, functor.Index
	res.Eqs = append(res.Eqs,
		sement.NewEquality(functor.Top, argument.Top),
		sement.NewEquality(v, argument.Index))
	res.Slots = withoutSlots(functor.Slots, slot)

	return res, nil
}

// ScopalArgumentIndex fills a handle slot of the functor with a qeq to the
// argument's top. The index comes from the argument.
func ScopalArgumentIndex(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	return scopal(functor, argument, slot, argument.Index)
}

// ScopalFunctorIndex fills a handle slot of the functor with a qeq to the
// argument's top ("probably" + "sleeps"). The index stays the functor's.
func ScopalFunctorIndex(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	return scopal(functor, argument, slot, functor.Index)
}

func scopal(functor, argument *sement.Element, slot, index string) (*sement.Element, error) {
	h, err := slotVariable(functor, slot)
	if err != nil {
		return nil, err
	}
	res := combine(functor, argument)
	res.Top, res.Index = functor.Top, index
	res.HCons = append(res.HCons, sement.Qeq(h, argument.Top))
	res.Slots = withoutSlots(functor.Slots, slot)

	return res, nil
}

// ScopalQuantifier binds a quantifier to its restriction: the quantifier's ARG0
// is equated with the argument's index and its RSTR is qeq the argument's top.
// Both slots are consumed; BODY stays open.
func ScopalQuantifier(functor, argument *sement.Element) (*sement.Element, error) {
	bound, err := slotVariable(functor, sement.RoleIntrinsic)
	if err != nil {
		return nil, err
	}
	rstr, err := slotVariable(functor, sement.RoleRstr)
	if err != nil {
		return nil, err
	}
	res := combine(functor, argument)
	res.Top, res.Index = functor.Top, functor.Index
	res.Eqs = append(res.Eqs, sement.NewEquality(bound, argument.Index))
	res.HCons = append(res.HCons, sement.Qeq(rstr, argument.Top))
	res.Slots = withoutSlots(functor.Slots, sement.RoleIntrinsic, sement.RoleRstr)

	return res, nil
}

// NonScopalArgumentHook is the logging form of the package function.
func (s *Session) NonScopalArgumentHook(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	return s.logged("non-scopal argument hook", slot)(NonScopalArgumentHook(functor, argument, slot))
}

// NonScopalFunctorHook is the logging form of the package function.
func (s *Session) NonScopalFunctorHook(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	return s.logged("non-scopal functor hook", slot)(NonScopalFunctorHook(functor, argument, slot))
}

// ScopalArgumentIndex is the logging form of the package function.
func (s *Session) ScopalArgumentIndex(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	return s.logged("scopal argument index", slot)(ScopalArgumentIndex(functor, argument, slot))
}

// ScopalFunctorIndex is the logging form of the package function.
func (s *Session) ScopalFunctorIndex(functor, argument *sement.Element, slot string) (*sement.Element, error) {
	return s.logged("scopal functor index", slot)(ScopalFunctorIndex(functor, argument, slot))
}

// ScopalQuantifier is the logging form of the package function.
func (s *Session) ScopalQuantifier(functor, argument *sement.Element) (*sement.Element, error) {
	return s.logged("scopal quantifier", sement.RoleRstr)(ScopalQuantifier(functor, argument))
}

func (s *Session) logged(op, slot string) func(*sement.Element, error) (*sement.Element, error) {
	return func(res *sement.Element, err error) (*sement.Element, error) {
		if err != nil {
			s.log.Debug("composition failed", zap.String("op", op), zap.String("slot", slot), zap.Error(err))
			return nil, err
		}
		s.log.Debug("composed",
			zap.String("op", op),
			zap.String("slot", slot),
			zap.String("top", res.Top),
			zap.String("index", res.Index),
			zap.Int("eqs", len(res.Eqs)))

		return res, nil
	}
}

// combine concatenates the lists of both inputs into fresh slices and overlays
// the argument's properties on the functor's.
func combine(functor, argument *sement.Element) *sement.Element {
	res := &sement.Element{
		Rels:      make([]*sement.EP, 0, len(functor.Rels)+len(argument.Rels)),
		Eqs:       make([]sement.Equality, 0, len(functor.Eqs)+len(argument.Eqs)+2),
		HCons:     make([]*sement.HCons, 0, len(functor.HCons)+len(argument.HCons)+1),
		ICons:     make([]*sement.ICons, 0, len(functor.ICons)+len(argument.ICons)),
		Variables: functor.Variables.Copy(),
	}
	res.Rels = append(append(res.Rels, functor.Rels...), argument.Rels...)
	res.Eqs = append(append(res.Eqs, functor.Eqs...), argument.Eqs...)
	res.HCons = append(append(res.HCons, functor.HCons...), argument.HCons...)
	res.ICons = append(append(res.ICons, functor.ICons...), argument.ICons...)
	for v, props := range argument.Variables.Copy() {
		res.Variables[v] = props
	}

	return res
}

func slotVariable(functor *sement.Element, slot string) (string, error) {
	v, ok := functor.Slots[slot]
	if !ok {
		return "", fmt.Errorf("%q: %w", slot, ErrMissingSlot)
	}

	return v, nil
}

func withoutSlots(slots map[string]string, drop ...string) map[string]string {
	out := sement.CopySlots(slots)
	for _, role := range drop {
		delete(out, role)
	}

	return out
}
