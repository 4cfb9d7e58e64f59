package algebra_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/semalg/algebra"
	"github.com/katalvlaran/semalg/codec"
	"github.com/katalvlaran/semalg/compare"
	"github.com/katalvlaran/semalg/sement"
	"github.com/katalvlaran/semalg/semi"
)

// grammar is a tiny SEM-I covering the test sentences.
const grammar = `
predicates:
  _the_q : ARG0 x, RSTR h, BODY h.
  _a_q : ARG0 x, RSTR h, BODY h.
  udef_q : ARG0 x, RSTR h, BODY h.
  pronoun_q : ARG0 x, RSTR h, BODY h.
  pron : ARG0 x.
  named : ARG0 x, CARG string.
  card : ARG0 i, ARG1 u, CARG string.
  unknown : ARG0 e, ARG u.
  _give_v_1 : ARG0 e, ARG1 i, ARG2 u, [ ARG3 i ].
  _cookie_n_1 : ARG0 x.
  _cat_n_1 : ARG0 x.
  _tasty_a_1 : ARG0 e, ARG1 u.
  _extremely_x_deg : ARG0 e, ARG1 u.
  _eat_v_1 : ARG0 e, ARG1 i, ARG2 i.
  _sleep_v_1 : ARG0 e, ARG1 i.
  _probable_a_1 : ARG0 e, ARG1 h.
  _maybe_a_1 : ARG0 e, ARG1 u.
  _believe_v_1 : ARG0 e, ARG1 i, ARG2 h.
`

func newSession(t *testing.T, opts ...algebra.Option) *algebra.Session {
	t.Helper()
	ix, err := semi.Parse(strings.NewReader(grammar))
	require.NoError(t, err)
	opts = append([]algebra.Option{algebra.WithLogger(zaptest.NewLogger(t))}, opts...)

	return algebra.NewSession(ix, opts...)
}

func must(t *testing.T) func(*sement.Element, error) *sement.Element {
	return func(e *sement.Element, err error) *sement.Element {
		t.Helper()
		require.NoError(t, err)
		return e
	}
}

// requireIsomorphic resolves got and checks it against the gold text.
func requireIsomorphic(t *testing.T, gold string, got *sement.Element) {
	t.Helper()
	g, err := codec.Decode(gold)
	require.NoError(t, err)
	ok, report, err := compare.ResolveAndCompare(g, got)
	require.NoError(t, err)
	require.True(t, ok, "not isomorphic:\n%s\ngot: %s", report, codec.Encode(got))
}
