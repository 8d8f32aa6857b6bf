package sexp

import (
	"testing"

	"sigil/internal/source"
)

func TestEqualIgnoresSpans(t *testing.T) {
	a := Sym("x")
	b := Sym("x")
	b.Span = source.Span{File: 3, Start: 10, End: 11}
	if !Equal(a, b) {
		t.Error("spans should not affect equality")
	}
}

func TestEqualStructural(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same symbols", Sym("f"), Sym("f"), true},
		{"different symbols", Sym("f"), Sym("g"), false},
		{"symbol vs opaque with same text", Sym("f"), Opaque("f"), false},
		{"vector vs list with same items", Vec(Sym("x")), List(Sym("x")), false},
		{
			"nested lists",
			List(Sym("+"), Sym("x"), Opaque("1")),
			List(Sym("+"), Sym("x"), Opaque("1")),
			true,
		},
		{
			"maps compare entries in order",
			Map(Entry{Keyword("a"), Opaque("1")}, Entry{Keyword("b"), Opaque("2")}),
			Map(Entry{Keyword("b"), Opaque("2")}, Entry{Keyword("a"), Opaque("1")}),
			false,
		},
		{
			"equal maps",
			Map(Entry{Keyword("post"), List(Sym("pos?"), Sym("%"))}),
			Map(Entry{Keyword("post"), List(Sym("pos?"), Sym("%"))}),
			true,
		},
		{"strings", Str("doc"), Str("doc"), true},
		{"string vs symbol", Str("doc"), Sym("doc"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneSharesNothing(t *testing.T) {
	orig := List(Sym("f"), Vec(Sym("x")), Map(Entry{Keyword("doc"), Str("d")}))
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone is not structurally equal")
	}

	cp.Items[0].Text = "g"
	cp.Items[1].Items[0].Text = "y"
	cp.Entries = nil
	if orig.Items[0].Text != "f" || orig.Items[1].Items[0].Text != "x" {
		t.Error("mutating the clone changed the original")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"symbol", Sym("inc"), "inc"},
		{"opaque number", Opaque("42"), "42"},
		{"keyword", Keyword("private"), ":private"},
		{"string quoted", Str("a \"b\""), `"a \"b\""`},
		{"vector", Vec(Sym("x"), Sym("y")), "[x y]"},
		{"empty vector", Vec(), "[]"},
		{"list", List(Sym("+"), Sym("x"), Opaque("1")), "(+ x 1)"},
		{
			"map",
			Map(Entry{Keyword("doc"), Str("d")}, Entry{Keyword("private"), Opaque("true")}),
			`{:doc "d", :private true}`,
		},
		{
			"nested",
			List(Sym("fn"), Vec(Sym("x")), List(Sym("+"), Sym("x"), Opaque("1"))),
			"(fn [x] (+ x 1))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatForms(t *testing.T) {
	got := FormatForms([]Node{Sym("x"), Opaque("1")})
	if got != "(x 1)" {
		t.Errorf("FormatForms = %q, want %q", got, "(x 1)")
	}
	if got := FormatForms(nil); got != "()" {
		t.Errorf("FormatForms(nil) = %q, want %q", got, "()")
	}
}
