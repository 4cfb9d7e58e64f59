package algebra_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semalg/algebra"
	"github.com/katalvlaran/semalg/codec"
	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/variable"
)

func predicates(e *sement.Element) []string {
	out := make([]string, len(e.Rels))
	for i, ep := range e.Rels {
		out[i] = ep.Predicate
	}
	return out
}

func assertHandlesOnly(t *testing.T, e *sement.Element) {
	t.Helper()
	for _, hc := range e.HCons {
		assert.True(t, variable.IsHandle(hc.Hi), "hi %s is not a handle", hc.Hi)
		assert.True(t, variable.IsHandle(hc.Lo), "lo %s is not a handle", hc.Lo)
	}
}

func TestPrepareForGeneration_UnquantifiedNoun(t *testing.T) {
	s := newSession(t)
	cookie := must(t)(s.Noun("_cookie_n_1", nil))
	before := cookie.Clone()

	got := must(t)(s.PrepareForGeneration(cookie))
	assert.True(t, got.Resolved())
	assert.ElementsMatch(t, []string{"unknown", "udef_q", "_cookie_n_1"}, predicates(got))
	assert.Equal(t, variable.Event, variable.Type(got.Index))
	assertHandlesOnly(t, got)

	requireIsomorphic(t, `[ TOP: h0 INDEX: e1 RELS: < [ unknown LBL: h2 ARG0: e1 ARG: x3 ] [ udef_q LBL: h4 ARG0: x3 RSTR: h5 BODY: h6 ] [ _cookie_n_1 LBL: h7 ARG0: x3 ] > HCONS: < h0 qeq h2 h5 qeq h7 > ]`, got)
	assert.Empty(t, cmp.Diff(before, cookie, cmpopts.EquateEmpty()), "input untouched")
}

func TestPrepareForGeneration_QuantifiedNoun(t *testing.T) {
	s := newSession(t)
	the := must(t)(s.Determiner("_the_q", nil))
	cookie := must(t)(s.Noun("_cookie_n_1", nil))
	theCookie := must(t)(s.ScopalQuantifier(the, cookie))
	require.True(t, algebra.IsQuantified(theCookie))

	got := must(t)(s.PrepareForGeneration(theCookie))
	assert.ElementsMatch(t, []string{"unknown", "_the_q", "_cookie_n_1"}, predicates(got))

	requireIsomorphic(t, `[ TOP: h0 INDEX: e1 RELS: < [ unknown LBL: h2 ARG0: e1 ARG: x3 ] [ _the_q LBL: h4 ARG0: x3 RSTR: h5 BODY: h6 ] [ _cookie_n_1 LBL: h7 ARG0: x3 ] > HCONS: < h0 qeq h2 h5 qeq h7 > ]`, got)
	assert.Empty(t, got.Slots, "the functor hook keeps the unknown predicate's slots")
}

func TestPrepareForGeneration_Verb(t *testing.T) {
	s := newSession(t)
	eat := must(t)(s.Verb("_eat_v_1", nil))

	got := must(t)(s.PrepareForGeneration(eat))
	assert.Equal(t, []string{"_eat_v_1"}, predicates(got))
	require.Len(t, got.HCons, 1)
	assert.Equal(t, got.Top, got.HCons[0].Hi)
	assert.Equal(t, eat.Top, got.HCons[0].Lo)
	for _, v := range got.ReferencedVariables() {
		assert.Contains(t, got.Variables, v)
	}
}

func TestPrepareForGeneration_CoercesHandles(t *testing.T) {
	s := newSession(t)
	maybe := must(t)(s.Adjective("_maybe_a_1", nil))
	sleep := must(t)(s.Verb("_sleep_v_1", nil))
	maybeSleeps := must(t)(s.ScopalFunctorIndex(maybe, sleep, "ARG1"))
	require.Equal(t, variable.Unspecific, variable.Type(maybeSleeps.HCons[0].Hi))

	got := must(t)(s.PrepareForGeneration(maybeSleeps))
	assertHandlesOnly(t, got)
	for _, ep := range got.Rels {
		if ep.Predicate == "_maybe_a_1" {
			assert.True(t, variable.IsHandle(ep.Args["ARG1"]))
		}
	}
	for _, v := range got.ReferencedVariables() {
		assert.Contains(t, got.Variables, v)
	}
	assert.NoError(t, got.Validate())
}

func TestPrepareForGeneration_DecodedInput(t *testing.T) {
	s := newSession(t, algebra.WithLabelerStart(100))
	in, err := codec.Decode(`[ TOP: h1 INDEX: e2 RELS: < [ _probable_a_1 LBL: h1 ARG0: e2 ARG1: u3 ] [ _sleep_v_1 LBL: h4 ARG0: e5 ARG1: i6 ] > HCONS: < u3 qeq h4 > ]`)
	require.NoError(t, err)

	got := must(t)(s.PrepareForGeneration(in))
	assertHandlesOnly(t, got)
	requireIsomorphic(t, `[ TOP: h0 INDEX: e2 RELS: < [ _probable_a_1 LBL: h1 ARG0: e2 ARG1: h3 ] [ _sleep_v_1 LBL: h4 ARG0: e5 ARG1: i6 ] > HCONS: < h3 qeq h4 h0 qeq h1 > ]`, got)
}

func TestPrepareForGeneration_CoercionHandleWinsTie(t *testing.T) {
	s := newSession(t, algebra.WithLabelerStart(100))
	// x3 already shares a class with x5 before the coercion pair is added.
	in, err := codec.Decode(`[ TOP: h1 INDEX: e2 RELS: < [ _probable_a_1 LBL: h1 ARG0: e2 ARG1: x3 ] [ _cat_n_1 LBL: h4 ARG0: x5 ] > HCONS: < x3 qeq h4 > EQS: < x3 eq x5 > ]`)
	require.NoError(t, err)

	got := must(t)(s.PrepareForGeneration(in))
	assertHandlesOnly(t, got)
	assert.Equal(t, "h101", got.Top)
	assert.Equal(t, "h102", got.Rels[0].Args["ARG1"])
	assert.Equal(t, "h102", got.Rels[1].Args["ARG0"])
	assert.NotContains(t, got.Variables, "x3")
}

func TestIsQuantified(t *testing.T) {
	direct, err := codec.Decode(`[ TOP: h1 INDEX: x2 RELS: < [ _the_q LBL: h3 ARG0: x2 RSTR: h5 BODY: h6 ] > ]`)
	require.NoError(t, err)
	assert.True(t, algebra.IsQuantified(direct))

	transitive, err := codec.Decode(`[ TOP: h1 INDEX: x2 RELS: < [ _the_q LBL: h3 ARG0: x4 RSTR: h5 BODY: h6 ] [ _cookie_n_1 LBL: h7 ARG0: x2 ] > EQS: < x2 eq x9 x9 eq x4 > ]`)
	require.NoError(t, err)
	assert.True(t, algebra.IsQuantified(transitive))

	transitive.Eqs = nil
	assert.False(t, algebra.IsQuantified(transitive))
}
