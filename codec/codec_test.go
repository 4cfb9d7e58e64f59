package codec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semalg/codec"
	"github.com/katalvlaran/semalg/compare"
	"github.com/katalvlaran/semalg/resolve"
	"github.com/katalvlaran/semalg/sement"
)

const theCookie = `[ TOP: h1 INDEX: x2 RELS: < [ _the_q LBL: h3 ARG0: x4 RSTR: h5 BODY: h6 ] [ _cookie_n_1 LBL: h7 ARG0: x8 ] > HCONS: < h5 qeq h7 > EQS: < x4 eq x8 > ]`

func TestDecode_TheCookie(t *testing.T) {
	e, err := codec.Decode(theCookie)
	require.NoError(t, err)

	assert.Equal(t, "h1", e.Top)
	assert.Equal(t, "x2", e.Index)
	require.Len(t, e.Rels, 2)
	assert.Equal(t, "_the_q", e.Rels[0].Predicate)
	assert.Equal(t, map[string]string{"ARG0": "x4", "RSTR": "h5", "BODY": "h6"}, e.Rels[0].Args)
	assert.Equal(t, []*sement.HCons{sement.Qeq("h5", "h7")}, e.HCons)
	assert.Equal(t, []sement.Equality{{"x4", "x8"}}, e.Eqs)
	assert.Empty(t, e.Slots)
	for _, v := range []string{"h1", "x2", "h3", "x4", "h5", "h6", "h7", "x8"} {
		assert.Contains(t, e.Variables, v)
	}
}

func TestDecode_EqsAndSlotsWithCommas(t *testing.T) {
	e, err := codec.Decode(`[ TOP: h1 INDEX: e2
		EQS: < x1 eq x2 eq x3 , x4 eq x5 x6 eq x7 >
		SLOTS: < ARG1: x2, ARG2: u3 ARG3: i4 > ]`)
	require.NoError(t, err)

	assert.Equal(t, []sement.Equality{{"x1", "x2", "x3"}, {"x4", "x5"}, {"x6", "x7"}}, e.Eqs)
	assert.Equal(t, map[string]string{"ARG1": "x2", "ARG2": "u3", "ARG3": "i4"}, e.Slots)
}

func TestDecode_SkipsLnkAndNormalizes(t *testing.T) {
	e, err := codec.Decode(`[ <0:12> "the cookie Liz" LTOP: h1 INDEX: x2 [ x PERS: 3 NUM: SG ]
		RELS: < [ "_the_q_rel"<0:3> LBL: h3 ARG0: x2 RSTR: h5 BODY: h6 ]
		        [ _Cookie_n_1<@1> LBL: h7 ARG0: x2 ]
		        [ named<1 2> "Liz" LBL: h8 ARG0: x9 CARG: "Liz" ] >
		HCONS: < h5 qeq h7 > ICONS: < x2 topic x9 > ]`)
	require.NoError(t, err)

	preds := []string{e.Rels[0].Predicate, e.Rels[1].Predicate, e.Rels[2].Predicate}
	assert.Equal(t, []string{"_the_q", "_cookie_n_1", "named"}, preds)
	carg, ok := e.Rels[2].Carg()
	assert.True(t, ok)
	assert.Equal(t, "Liz", carg)
	assert.Equal(t, map[string]string{"PERS": "3", "NUM": "sg"}, e.Variables["x2"])
	assert.Equal(t, []*sement.ICons{{Left: "x2", Relation: "topic", Right: "x9"}}, e.ICons)
}

func TestDecode_SyntaxErrorPosition(t *testing.T) {
	_, err := codec.Decode("[ TOP: h1\n  INDEX x2 ]")
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrSyntax))

	var se *codec.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, 3, se.Col)
	assert.Equal(t, "INDEX", se.Near)
}

func TestDecode_Malformed(t *testing.T) {
	tests := map[string]string{
		"unknown feature":    `[ TOP: h1 COLOUR: h2 ]`,
		"lonely equality":    `[ TOP: h1 EQS: < x1 > ]`,
		"dangling eq":        `[ TOP: h1 EQS: < eq x1 > ]`,
		"unterminated":       `[ TOP: h1 RELS: < [ _cat_n_1 LBL: h2 ARG0: x3 ] `,
		"missing label":      `[ TOP: h1 RELS: < [ _cat_n_1 ARG0: x3 ] > ]`,
		"unterminated quote": `[ TOP: h1 RELS: < [ named LBL: h2 CARG: "Liz ] > ]`,
		"trailing text":      `[ TOP: h1 ] x`,
		"bare colon":         `[ TOP: : ]`,
		"no opening bracket": `TOP: h1 ]`,
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(text)
			assert.ErrorIs(t, err, codec.ErrSyntax)
		})
	}
}

func TestDecodeAll(t *testing.T) {
	all, err := codec.DecodeAll(theCookie + "\n" + `[ TOP: h1 INDEX: e2 ]`)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := codec.DecodeAll("  \n")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEncode(t *testing.T) {
	e := &sement.Element{
		Top:   "h1",
		Index: "e2",
		Rels: []*sement.EP{
			sement.NewEP("_sleep_v_1", "h1", map[string]string{"ARG1": "x3", "ARG0": "e2"}),
		},
		Slots:     map[string]string{"ARG1": "x3"},
		Variables: sement.Properties{"e2": {"TENSE": "pres", "SF": "prop"}},
	}
	want := "[ TOP: h1 INDEX: e2 [ e SF: prop TENSE: pres ] RELS: < [ _sleep_v_1 LBL: h1 ARG0: e2 ARG1: x3 ] > SLOTS: < ARG1: x3 > ]"
	assert.Equal(t, want, codec.Encode(e))

	bare := codec.Encode(e, codec.WithoutProperties())
	assert.NotContains(t, bare, "SF:")
}

func TestEncode_RoleAndPropertyOrder(t *testing.T) {
	e := &sement.Element{
		Top: "h0",
		Rels: []*sement.EP{
			sement.NewEP("_the_q", "h1", map[string]string{"BODY": "h4", "RSTR": "h3", "ARG0": "x2", "XARG": "i9"}),
		},
		Eqs:       []sement.Equality{{"x2", "x5", "x6"}, {"h3", "h7"}},
		Variables: sement.Properties{"x2": {"IND": "+", "NUM": "sg", "PERS": "3", "ZZ": "a"}},
	}
	got := codec.Encode(e)
	assert.Contains(t, got, "[ _the_q LBL: h1 ARG0: x2 [ x PERS: 3 NUM: sg IND: + ZZ: a ] RSTR: h3 BODY: h4 XARG: i9 ]")
	assert.Contains(t, got, "EQS: < x2 eq x5 eq x6 h3 eq h7 >")
	assert.NotContains(t, got, "HCONS")
}

func TestEncode_Indent(t *testing.T) {
	e, err := codec.Decode(theCookie)
	require.NoError(t, err)
	got := codec.Encode(e, codec.WithIndent())

	lines := strings.Split(got, "\n")
	assert.Equal(t, "[ TOP: h1", lines[0])
	assert.Equal(t, "  INDEX: x2", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  RELS: < [ _the_q"))
	assert.True(t, strings.HasPrefix(lines[3], "          [ _cookie_n_1"))

	again, err := codec.Decode(got)
	require.NoError(t, err)
	assert.Equal(t, codec.Encode(e), codec.Encode(again))
}

func TestRoundTrip_Isomorphic(t *testing.T) {
	texts := []string{
		theCookie,
		`[ TOP: h0 INDEX: e1 [ e SF: prop ] RELS: < [ _give_v_1 LBL: h0 ARG0: e1 ARG1: i2 ARG2: u3 ARG3: i4 ] [ _a_q LBL: h10 ARG0: x11 RSTR: h12 BODY: h13 ] [ _cookie_n_1 LBL: h6 ARG0: x7 [ x PERS: 3 NUM: sg ] ] > HCONS: < h12 qeq h6 > EQS: < x11 eq x7 x7 eq u3 > SLOTS: < ARG1: i2 ARG3: i4 > ]`,
		`[ TOP: h1 INDEX: x2 RELS: < [ named LBL: h1 ARG0: x2 CARG: "Liz \"the\" cat" ] > ]`,
		`[ TOP: h0 [ h FOO: bar ] INDEX: e2 RELS: < [ _sleep_v_1 LBL: h4 ARG0: e2 ARG1: i8 ] > HCONS: < h0 qeq h4 h7 [ h FOO: baz ] qeq h4 > SLOTS: < ARG1: i8 [ i PERS: 3 ] > ]`,
	}
	for _, text := range texts {
		e, err := codec.Decode(text)
		require.NoError(t, err)
		resolved := resolve.Resolve(e)

		back, err := codec.Decode(codec.Encode(resolved))
		require.NoError(t, err)
		ok, err := compare.IsIsomorphic(resolved, back)
		require.NoError(t, err)
		assert.True(t, ok, text)
	}
}

func TestEncode_PropertiesOutsideRels(t *testing.T) {
	e := &sement.Element{
		Top:   "h1",
		Index: "e2",
		Rels:  []*sement.EP{sement.NewEP("_sleep_v_1", "h4", map[string]string{"ARG0": "e2"})},
		Slots: map[string]string{"ARG1": "i5"},
		Eqs:   []sement.Equality{{"e2", "e9"}},
		HCons: []*sement.HCons{sement.Qeq("h6", "h4")},
		Variables: sement.Properties{
			"h1": {"FOO": "top"},
			"h6": {"FOO": "bar"},
			"i5": {"PERS": "3"},
			"e9": {"TENSE": "past"},
		},
	}

	text := codec.Encode(e)
	assert.Equal(t, `[ TOP: h1 [ h FOO: top ] INDEX: e2 RELS: < [ _sleep_v_1 LBL: h4 ARG0: e2 ] > HCONS: < h6 [ h FOO: bar ] qeq h4 > EQS: < e2 eq e9 [ e TENSE: past ] > SLOTS: < ARG1: i5 [ i PERS: 3 ] > ]`, text)

	back, err := codec.Decode(text)
	require.NoError(t, err)
	for v, props := range e.Variables {
		assert.Equal(t, props, back.Variables[v], v)
	}
}

func TestNormalizePredicate(t *testing.T) {
	assert.Equal(t, "_the_q", codec.NormalizePredicate(`"_The_q_rel"`))
	assert.Equal(t, "udef_q", codec.NormalizePredicate("udef_q"))
}
