package sement_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semalg/sement"
)

// giveACookie builds "give a cookie" with pending equalities.
func giveACookie() *sement.Element {
	return &sement.Element{
		Top:   "h0101",
		Index: "e1101",
		Rels: []*sement.EP{
			sement.NewEP("_a_q", "h10", map[string]string{"ARG0": "x11", "RSTR": "h12", "BODY": "h13"}),
			sement.NewEP("_cookie_n_1", "h6", map[string]string{"ARG0": "x7"}),
			sement.NewEP("_give_v_1", "h0", map[string]string{"ARG0": "e1", "ARG1": "i2", "ARG2": "u3", "ARG3": "i4"}),
		},
		Slots: map[string]string{"ARG2": "u3", "ARG3": "i4"},
		Eqs: []sement.Equality{
			sement.NewEquality("x11", "x7"),
			sement.NewEquality("x7", "i2"),
			sement.NewEquality("h0101", "h0"),
			sement.NewEquality("e1", "e1101"),
		},
		HCons:     []*sement.HCons{sement.Qeq("h12", "h6")},
		Variables: sement.Properties{"e1": {"NUM": "sg"}},
	}
}

func TestNewEquality_DropsRepeats(t *testing.T) {
	eq := sement.NewEquality("x1", "x2", "x1", "x3")
	assert.Equal(t, sement.Equality{"x1", "x2", "x3"}, eq)
	assert.True(t, eq.Contains("x2"))
	assert.False(t, eq.Contains("x4"))
}

func TestEP_Queries(t *testing.T) {
	q := sement.NewEP("_the_q", "h3", map[string]string{"ARG0": "x4", "RSTR": "h5", "BODY": "h6"})
	assert.Equal(t, "x4", q.Intrinsic())
	assert.True(t, q.IsQuantifier())
	assert.Equal(t, []string{"ARG0", "BODY", "RSTR"}, q.Roles())

	named := sement.NewEP("named", "h1", map[string]string{"ARG0": "x2", "CARG": "Liz"})
	carg, ok := named.Carg()
	assert.True(t, ok)
	assert.Equal(t, "Liz", carg)
	assert.False(t, named.IsQuantifier())

	assert.True(t, sement.IsQuantifierPredicate("udef_q"))
	assert.False(t, sement.IsQuantifierPredicate("_quick_a_1"))
}

func TestNewEP_CopiesArgs(t *testing.T) {
	args := map[string]string{"ARG0": "x1"}
	ep := sement.NewEP("_cat_n_1", "h2", args)
	args["ARG0"] = "x9"
	assert.Equal(t, "x1", ep.Intrinsic())
}

func TestClone_IsIndependent(t *testing.T) {
	orig := giveACookie()
	clone := orig.Clone()

	if diff := cmp.Diff(orig, clone, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.Rels[0].Args["ARG0"] = "x99"
	clone.HCons[0].Lo = "h99"
	clone.Slots["ARG9"] = "u99"
	clone.Eqs[0][0] = "x98"
	clone.Variables["e1"]["NUM"] = "pl"

	assert.Equal(t, "x11", orig.Rels[0].Args["ARG0"])
	assert.Equal(t, "h6", orig.HCons[0].Lo)
	assert.NotContains(t, orig.Slots, "ARG9")
	assert.Equal(t, "x11", orig.Eqs[0][0])
	assert.Equal(t, "sg", orig.Variables["e1"]["NUM"])
}

func TestReferencedVariables_StableOrder(t *testing.T) {
	e := giveACookie()
	got := e.ReferencedVariables()
	want := []string{
		"h0101", "e1101",
		"h10", "x11", "h13", "h12",
		"h6", "x7",
		"h0", "e1", "i2", "u3", "i4",
	}
	assert.Equal(t, want, got)
}

func TestValidate_Valid(t *testing.T) {
	e := giveACookie()
	assert.NoError(t, e.Validate(), "unresolved elements skip the properties check")
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	e := &sement.Element{
		Top:   "h1",
		Index: "x2",
		Rels: []*sement.EP{
			sement.NewEP("_cat_n_1", "h1", map[string]string{"ARG0": "x2"}),
			nil,
		},
		Slots:     map[string]string{"CARG": "x5", "ARG0": "x2"},
		Eqs:       nil,
		Variables: sement.Properties{"x2": {}, "x5": {}},
	}

	err := e.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, sement.ErrInvalid)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	// nil EP, CARG slot, intrinsic slot of a non-quantifier, h1 without properties.
	assert.Len(t, merr.Errors, 4)
}

func TestValidate_QuantifierMayExposeIntrinsic(t *testing.T) {
	e := &sement.Element{
		Top:   "h4",
		Index: "x2",
		Rels: []*sement.EP{
			sement.NewEP("_the_q", "h1", map[string]string{"ARG0": "x2", "RSTR": "h3", "BODY": "h5"}),
		},
		Slots: map[string]string{"ARG0": "x2", "RSTR": "h3", "BODY": "h5"},
		Variables: sement.Properties{
			"h1": {}, "x2": {}, "h3": {}, "h4": {}, "h5": {},
		},
	}
	assert.NoError(t, e.Validate())
}
