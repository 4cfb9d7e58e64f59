// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session state and functional options.
// Concurrency:
//   - One Session per generation run; the labeler is not shared across sessions.

package algebra

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/semalg/semi"
	"github.com/katalvlaran/semalg/variable"
)

// Default predicate names used by PrepareForGeneration.
const (
	DefaultGenericQuantifier = "udef_q"
	DefaultUnknownPredicate  = "unknown"

	// UnknownSlot is the role of the unknown predicate that takes the wrapped element.
	UnknownSlot = "ARG"

	// PronounPredicate and PronounQuantifier build pronouns.
	PronounPredicate  = "pron"
	PronounQuantifier = "pronoun_q"

	// NamedPredicate carries proper names in its CARG.
	NamedPredicate = "named"
)

var (
	// ErrMissingSlot indicates a composition referenced a slot the functor does not have.
	ErrMissingSlot = errors.New("algebra: missing slot")

	// ErrNilLookup indicates NewSession was given no signature lookup.
	ErrNilLookup = errors.New("algebra: signature lookup is nil")

	// ErrNilLogger indicates WithLogger was given a nil logger.
	ErrNilLogger = errors.New("algebra: logger is nil")

	// ErrEmptyPredicate indicates an option was given an empty predicate name.
	ErrEmptyPredicate = errors.New("algebra: predicate name is empty")
)

// Session holds the labeler, signature lookup and logger of one generation run.
type Session struct {
	labeler    *variable.Labeler
	lookup     semi.Lookup
	log        *zap.Logger
	quantifier string // generic quantifier for unquantified indices
	unknown    string // predicate wrapping non-event indices
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(ErrNilLogger.Error())
	}
	return func(s *Session) {
		s.log = log
	}
}

// WithLabelerStart makes the first fresh variable number start+1.
func WithLabelerStart(start uint64) Option {
	return func(s *Session) {
		s.labeler.Set(start)
	}
}

// WithGenericQuantifier overrides the quantifier PrepareForGeneration uses.
// Panics on an empty name.
func WithGenericQuantifier(predicate string) Option {
	if predicate == "" {
		panic(ErrEmptyPredicate.Error())
	}
	return func(s *Session) {
		s.quantifier = predicate
	}
}

// WithUnknownPredicate overrides the predicate PrepareForGeneration wraps
// non-event indices with. Panics on an empty name.
func WithUnknownPredicate(predicate string) Option {
	if predicate == "" {
		panic(ErrEmptyPredicate.Error())
	}
	return func(s *Session) {
		s.unknown = predicate
	}
}

// ConfigOptions translates the session defaults of cfg into options. Unset
// fields yield no option.
func ConfigOptions(cfg *semi.Config) []Option {
	var opts []Option
	if cfg.LabelerStart > 0 {
		opts = append(opts, WithLabelerStart(cfg.LabelerStart))
	}
	if cfg.GenericQuantifier != "" {
		opts = append(opts, WithGenericQuantifier(cfg.GenericQuantifier))
	}
	if cfg.UnknownPredicate != "" {
		opts = append(opts, WithUnknownPredicate(cfg.UnknownPredicate))
	}

	return opts
}

// NewSession returns a Session drawing signatures from lookup.
// Panics if lookup is nil.
func NewSession(lookup semi.Lookup, opts ...Option) *Session {
	if lookup == nil {
		panic(ErrNilLookup.Error())
	}
	s := &Session{
		labeler:    variable.NewLabeler(0),
		lookup:     lookup,
		log:        zap.NewNop(),
		quantifier: DefaultGenericQuantifier,
		unknown:    DefaultUnknownPredicate,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Labeler returns the session's labeler.
func (s *Session) Labeler() *variable.Labeler {
	return s.labeler
}

// Lookup returns the session's signature lookup.
func (s *Session) Lookup() semi.Lookup {
	return s.lookup
}
