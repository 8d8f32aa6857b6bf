package defn

import (
	"testing"

	"sigil/internal/diag"
	"sigil/internal/sexp"
)

func TestParseClauseBasic(t *testing.T) {
	// ([x] (+ x 1))
	raw := []sexp.Node{
		sexp.Vec(sexp.Sym("x")),
		sexp.List(sexp.Sym("+"), sexp.Sym("x"), sexp.Opaque("1")),
	}
	c, err := parseClause(raw, singleClause)
	if err != nil {
		t.Fatalf("parseClause: %v", err)
	}
	if !sexp.Equal(c.Params, raw[0]) {
		t.Errorf("params = %s", c.Params)
	}
	if c.PrePost != nil {
		t.Errorf("unexpected prepost %s", *c.PrePost)
	}
	if len(c.Body) != 1 || !sexp.Equal(c.Body[0], raw[1]) {
		t.Errorf("body = %v", c.Body)
	}
}

func TestParseClausePrePost(t *testing.T) {
	prePost := sexp.Map(sexp.Entry{Key: sexp.Keyword("post"), Val: sexp.List(sexp.Sym("pos?"), sexp.Sym("%"))})
	raw := []sexp.Node{sexp.Vec(sexp.Sym("x")), prePost, sexp.Sym("x")}
	c, err := parseClause(raw, multiClause)
	if err != nil {
		t.Fatalf("parseClause: %v", err)
	}
	if c.PrePost == nil || !sexp.Equal(*c.PrePost, prePost) {
		t.Errorf("prepost = %v", c.PrePost)
	}
	if len(c.Body) != 1 || !sexp.Equal(c.Body[0], sexp.Sym("x")) {
		t.Errorf("body = %v", c.Body)
	}
}

func TestParseClauseEmptyBody(t *testing.T) {
	c, err := parseClause([]sexp.Node{sexp.Vec()}, singleClause)
	if err != nil {
		t.Fatalf("parseClause: %v", err)
	}
	if len(c.Body) != 0 {
		t.Errorf("body = %v, want empty", c.Body)
	}
}

func TestParseClauseErrorWordingByContext(t *testing.T) {
	raw := []sexp.Node{sexp.Sym("x"), sexp.Opaque("1")}

	_, err := parseClause(raw, multiClause)
	if diag.CodeOf(err) != diag.DefBadParamVector {
		t.Fatalf("multi-clause code = %v", diag.CodeOf(err))
	}
	if got, want := err.Error(), "parameter declaration x should be a vector"; got != want {
		t.Errorf("multi-clause message = %q, want %q", got, want)
	}

	_, err = parseClause(raw, singleClause)
	if diag.CodeOf(err) != diag.DefBadSignature {
		t.Fatalf("single-clause code = %v", diag.CodeOf(err))
	}
	// The single-clause wording reports the whole remainder, not just the
	// parameter slot.
	if got, want := err.Error(), "invalid signature: (x 1) should be a list"; got != want {
		t.Errorf("single-clause message = %q, want %q", got, want)
	}
}

func TestBuildClauseInvertsParse(t *testing.T) {
	tests := []struct {
		name string
		raw  []sexp.Node
	}{
		{"params only", []sexp.Node{sexp.Vec(sexp.Sym("x"))}},
		{
			"params and body",
			[]sexp.Node{sexp.Vec(sexp.Sym("x")), sexp.List(sexp.Sym("inc"), sexp.Sym("x"))},
		},
		{
			"params, prepost, body",
			[]sexp.Node{
				sexp.Vec(sexp.Sym("a"), sexp.Sym("b")),
				sexp.Map(sexp.Entry{Key: sexp.Keyword("pre"), Val: sexp.Vec(sexp.Sym("a"))}),
				sexp.Opaque("2"),
				sexp.Sym("b"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseClause(tt.raw, multiClause)
			if err != nil {
				t.Fatalf("parseClause: %v", err)
			}
			if got := buildClause(c); !sexp.EqualItems(got, tt.raw) {
				t.Errorf("buildClause = %s, want %s", sexp.FormatForms(got), sexp.FormatForms(tt.raw))
			}
		})
	}
}

func TestBuildClauseCopies(t *testing.T) {
	c, err := parseClause([]sexp.Node{sexp.Vec(sexp.Sym("x")), sexp.Sym("x")}, singleClause)
	if err != nil {
		t.Fatalf("parseClause: %v", err)
	}
	out := buildClause(c)
	out[0].Items[0].Text = "mutated"
	if c.Params.Items[0].Text != "x" {
		t.Error("buildClause output aliases the clause")
	}
}
