// SPDX-License-Identifier: MIT
//
// File: prepare.go
// Role: Generation preparation pipeline.
// Determinism:
//   - Fresh handles are allocated in hcons order, hi before lo.

package algebra

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/semalg/resolve"
	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/variable"
)

// PrepareForGeneration returns a grammar-ready copy of e:
//
//  1. e is duplicated; e itself is never modified.
//  2. If the index is not an event, it is bound by the generic quantifier
//     (unless already quantified) and the result is wrapped as the ARG of the
//     unknown predicate.
//  3. A fresh global top is added, qeq the previous top.
//  4. Every non-handle variable in a handle constraint is equated with a
//     fresh handle, which represents its class on resolution even when the
//     class already held a variable of equal rank.
//  5. The element is resolved. Every referenced variable has a property
//     entry afterwards, even when there was nothing to resolve.
func (s *Session) PrepareForGeneration(e *sement.Element) (*sement.Element, error) {
	dup := e.Clone()

	if variable.Type(dup.Index) != variable.Event {
		if !IsQuantified(dup) {
			q, err := s.CreateBase(s.quantifier, nil)
			if err != nil {
				return nil, err
			}
			if dup, err = s.ScopalQuantifier(q, dup); err != nil {
				return nil, err
			}
		}
		unk, err := s.CreateBase(s.unknown, nil)
		if err != nil {
			return nil, err
		}
		if dup, err = s.NonScopalFunctorHook(unk, dup, UnknownSlot); err != nil {
			return nil, err
		}
	}

	gtop := s.labeler.Next(variable.Handle)
	dup.HCons = append(dup.HCons, sement.Qeq(gtop, dup.Top))
	dup.Top = gtop

	var coerced []string
	for _, hc := range dup.HCons {
		for _, v := range [2]string{hc.Hi, hc.Lo} {
			if variable.IsHandle(v) {
				continue
			}
			fresh := s.labeler.Next(variable.Handle)
			dup.Variables[fresh] = map[string]string{}
			dup.Eqs = append(dup.Eqs, sement.NewEquality(fresh, v))
			coerced = append(coerced, fresh)
		}
	}

	for _, v := range dup.ReferencedVariables() {
		if _, ok := dup.Variables[v]; !ok {
			dup.Variables[v] = map[string]string{}
		}
	}

	out := resolve.Resolve(dup, resolve.Prefer(coerced...))
	s.log.Debug("prepared for generation",
		zap.String("top", out.Top),
		zap.String("index", out.Index),
		zap.Int("rels", len(out.Rels)))

	return out, nil
}

// IsQuantified reports whether e's index, or any variable equated with it by
// a pending equality, is the ARG0 of an EP that has a RSTR.
func IsQuantified(e *sement.Element) bool {
	bound := sement.NewEquality(e.Index)
	for _, class := range resolve.Group(e.Eqs) {
		if class.Contains(e.Index) {
			bound = class
			break
		}
	}
	for _, ep := range e.Rels {
		if ep.IsQuantifier() && bound.Contains(ep.Intrinsic()) {
			return true
		}
	}

	return false
}
