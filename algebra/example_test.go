package algebra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/semalg/algebra"
	"github.com/katalvlaran/semalg/codec"
	"github.com/katalvlaran/semalg/resolve"
	"github.com/katalvlaran/semalg/semi"
)

// ExampleSession_ScopalQuantifier composes "the cookie" and resolves it.
func ExampleSession_ScopalQuantifier() {
	ix, err := semi.Parse(strings.NewReader(grammar))
	if err != nil {
		panic(err)
	}
	s := algebra.NewSession(ix)

	the, _ := s.Determiner("_the_q", nil)
	cookie, _ := s.Noun("_cookie_n_1", nil)
	theCookie, err := s.ScopalQuantifier(the, cookie)
	if err != nil {
		panic(err)
	}
	fmt.Println(codec.Encode(theCookie))
	fmt.Println(codec.Encode(resolve.Resolve(theCookie)))
	// Output:
	// [ TOP: h5 INDEX: x1 RELS: < [ _the_q LBL: h4 ARG0: x1 RSTR: h2 BODY: h3 ] [ _cookie_n_1 LBL: h7 ARG0: x6 ] > HCONS: < h2 qeq h7 > EQS: < x1 eq x6 > SLOTS: < BODY: h3 > ]
	// [ TOP: h5 INDEX: x1 RELS: < [ _the_q LBL: h4 ARG0: x1 RSTR: h2 BODY: h3 ] [ _cookie_n_1 LBL: h7 ARG0: x1 ] > HCONS: < h2 qeq h7 > SLOTS: < BODY: h3 > ]
}

// ExampleSession_PrepareForGeneration wraps a bare noun for the generator.
func ExampleSession_PrepareForGeneration() {
	ix, err := semi.Parse(strings.NewReader(grammar))
	if err != nil {
		panic(err)
	}
	s := algebra.NewSession(ix)

	cookie, _ := s.Noun("_cookie_n_1", nil)
	ready, err := s.PrepareForGeneration(cookie)
	if err != nil {
		panic(err)
	}
	fmt.Println(codec.Encode(ready, codec.WithIndent()))
	// Output:
	// [ TOP: h11
	//   INDEX: e8
	//   RELS: < [ unknown LBL: h10 ARG0: e8 ARG: x3 ]
	//           [ udef_q LBL: h6 ARG0: x3 RSTR: h4 BODY: h5 ]
	//           [ _cookie_n_1 LBL: h2 ARG0: x3 ] >
	//   HCONS: < h4 qeq h2 h11 qeq h10 > ]
}
