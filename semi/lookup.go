// SPDX-License-Identifier: MIT
//
// File: lookup.go
// Role: Signature types, the Lookup interface and the in-memory Index.

package semi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the predicate has no synopsis in the grammar.
	ErrNotFound = errors.New("semi: predicate not found")

	// ErrSyntax indicates a malformed SEM-I line.
	ErrSyntax = errors.New("semi: syntax error")

	// ErrMissingConfig indicates a required configuration key is absent.
	ErrMissingConfig = errors.New("semi: missing configuration key")
)

// Role is one argument position of a predicate synopsis.
type Role struct {
	// Name is the role name, e.g. "ARG1" or "CARG".
	Name string

	// Type is the variable type tag ("e", "x", ...) or "string" for constants.
	Type string

	// Optional marks roles written in brackets in the SEM-I.
	Optional bool
}

// Signature is the ordered role list of a predicate.
type Signature struct {
	Predicate string
	Roles     []Role
}

// Lookup resolves predicates to their signatures.
type Lookup interface {
	// Signature returns the predicate's signature or an error wrapping ErrNotFound.
	Signature(predicate string) (Signature, error)
}

// Index is an in-memory Lookup. The zero value is empty and usable.
type Index struct {
	sigs map[string]Signature
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{sigs: make(map[string]Signature)}
}

// Add registers sig unless the predicate already has one (first synopsis wins).
// It reports whether sig was stored.
func (ix *Index) Add(sig Signature) bool {
	if ix.sigs == nil {
		ix.sigs = make(map[string]Signature)
	}
	if _, ok := ix.sigs[sig.Predicate]; ok {
		return false
	}
	roles := append([]Role(nil), sig.Roles...)
	ix.sigs[sig.Predicate] = Signature{Predicate: sig.Predicate, Roles: roles}

	return true
}

// Signature implements Lookup.
func (ix *Index) Signature(predicate string) (Signature, error) {
	sig, ok := ix.sigs[predicate]
	if !ok {
		return Signature{}, fmt.Errorf("%q: %w", predicate, ErrNotFound)
	}
	sig.Roles = append([]Role(nil), sig.Roles...)

	return sig, nil
}

// Len returns the number of predicates.
func (ix *Index) Len() int {
	return len(ix.sigs)
}

// Predicates returns all predicate names sorted.
func (ix *Index) Predicates() []string {
	out := make([]string, 0, len(ix.sigs))
	for p := range ix.sigs {
		out = append(out, p)
	}
	sort.Strings(out)

	return out
}

// String renders the signature in SEM-I synopsis form.
func (s Signature) String() string {
	parts := make([]string, len(s.Roles))
	for i, r := range s.Roles {
		if r.Optional {
			parts[i] = "[ " + r.Name + " " + r.Type + " ]"
		} else {
			parts[i] = r.Name + " " + r.Type
		}
	}

	return s.Predicate + " : " + strings.Join(parts, ", ") + "."
}
