// SPDX-License-Identifier: MIT
//
// File: base.go
// Role: Single-EP elements from predicate signatures, plus part-of-speech wrappers.
// Determinism:
//   - Fresh variables are drawn in signature order, then the label, then
//     (quantifiers only) the top.

package algebra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/variable"
)

// CreateBase builds an element holding one EP for predicate. Every role of the
// predicate's signature gets a fresh variable of the signature's type; props
// become the properties of the intrinsic variable (nil means none).
//
// The slot table exposes every role except ARG0 and CARG. Quantifiers also
// expose ARG0 and get a top distinct from their label.
//
// An unknown predicate fails with an error wrapping semi.ErrNotFound before
// any variable is allocated.
func (s *Session) CreateBase(predicate string, props map[string]string) (*sement.Element, error) {
	return s.create(predicate, nil, props)
}

// CreateCARG is CreateBase for predicates carrying a constant, e.g. "named"
// with CARG "Liz". The top is always the label and CARG is never a slot.
func (s *Session) CreateCARG(predicate, carg string, props map[string]string) (*sement.Element, error) {
	return s.create(predicate, &carg, props)
}

func (s *Session) create(predicate string, carg *string, props map[string]string) (*sement.Element, error) {
	sig, err := s.lookup.Signature(predicate)
	if err != nil {
		return nil, fmt.Errorf("algebra: %w", err)
	}

	args := make(map[string]string, len(sig.Roles)+1)
	for _, role := range sig.Roles {
		if role.Name == sement.RoleCarg {
			continue
		}
		args[role.Name] = s.labeler.Next(role.Type)
	}
	label := s.labeler.Next(variable.Handle)
	quantifier := carg == nil && sement.IsQuantifierPredicate(predicate)
	top := label
	if quantifier {
		top = s.labeler.Next(variable.Handle)
	}
	if carg != nil {
		args[sement.RoleCarg] = *carg
	}

	slots := make(map[string]string, len(args))
	for role, v := range args {
		if role == sement.RoleCarg {
			continue
		}
		if role == sement.RoleIntrinsic && !quantifier {
			continue
		}
		slots[role] = v
	}

	index := args[sement.RoleIntrinsic]
	intrinsic := make(map[string]string, len(props))
	for k, v := range props {
		intrinsic[k] = v
	}

	e := &sement.Element{
		Top:       top,
		Index:     index,
		Rels:      []*sement.EP{{Predicate: predicate, Label: label, Args: args}},
		Slots:     slots,
		Eqs:       []sement.Equality{},
		HCons:     []*sement.HCons{},
		ICons:     []*sement.ICons{},
		Variables: sement.Properties{index: intrinsic},
	}
	s.log.Debug("created base element",
		zap.String("predicate", predicate),
		zap.String("top", top),
		zap.String("index", index),
		zap.Strings("slots", e.SlotRoles()))

	return e, nil
}

// Basic creates an element for a predicate of unknown part of speech.
func (s *Session) Basic(predicate string, props map[string]string) (*sement.Element, error) {
	return s.CreateBase(predicate, props)
}

// Noun creates a noun element.
func (s *Session) Noun(predicate string, props map[string]string) (*sement.Element, error) {
	return s.CreateBase(predicate, props)
}

// Verb creates a verb element.
func (s *Session) Verb(predicate string, props map[string]string) (*sement.Element, error) {
	return s.CreateBase(predicate, props)
}

// Adjective creates an adjective element.
func (s *Session) Adjective(predicate string, props map[string]string) (*sement.Element, error) {
	return s.CreateBase(predicate, props)
}

// Determiner creates a determiner (quantifier) element.
func (s *Session) Determiner(predicate string, props map[string]string) (*sement.Element, error) {
	return s.CreateBase(predicate, props)
}

// Preposition creates a preposition element.
func (s *Session) Preposition(predicate string, props map[string]string) (*sement.Element, error) {
	return s.CreateBase(predicate, props)
}

// NamedEntity creates a "named" element whose CARG is name.
func (s *Session) NamedEntity(name string, props map[string]string) (*sement.Element, error) {
	return s.CreateCARG(NamedPredicate, name, props)
}

// Pronoun creates a quantified pronoun. Person and number left out of props
// stay unconstrained.
func (s *Session) Pronoun(props map[string]string) (*sement.Element, error) {
	pron, err := s.CreateBase(PronounPredicate, props)
	if err != nil {
		return nil, err
	}
	q, err := s.CreateBase(PronounQuantifier, nil)
	if err != nil {
		return nil, err
	}

	return s.ScopalQuantifier(q, pron)
}
