package reader

import (
	"testing"

	"sigil/internal/diag"
	"sigil/internal/sexp"
	"sigil/internal/source"
)

func readString(t *testing.T, input string) ([]sexp.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sx", []byte(input))
	bag := diag.NewBag(16)
	forms := New(fs.Get(id), bag).ReadAll()
	return forms, bag
}

func TestReadDefnForm(t *testing.T) {
	forms, bag := readString(t, `(defn f "doc" {:private true} [x] (+ x 1))`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(forms) != 1 {
		t.Fatalf("got %d forms, want 1", len(forms))
	}
	want := sexp.List(
		sexp.Sym("defn"),
		sexp.Sym("f"),
		sexp.Str("doc"),
		sexp.Map(sexp.Entry{Key: sexp.Keyword("private"), Val: sexp.Sym("true")}),
		sexp.Vec(sexp.Sym("x")),
		sexp.List(sexp.Sym("+"), sexp.Sym("x"), sexp.Opaque("1")),
	)
	if !sexp.Equal(forms[0], want) {
		t.Errorf("read %s, want %s", forms[0], want)
	}
}

func TestReadMultipleTopLevelForms(t *testing.T) {
	forms, bag := readString(t, "(defn f [x] x)\n(defn g [] 0)\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
}

func TestReadRoundTripsThroughPrinter(t *testing.T) {
	inputs := []string{
		"(fn [x] (+ x 1))",
		"(defn g [a b] {:pre [(pos? a)]} (* a b))",
		`(defn h "doc" [] nil)`,
	}
	for _, in := range inputs {
		forms, bag := readString(t, in)
		if bag.HasErrors() {
			t.Fatalf("%s: diagnostics %v", in, bag.Items())
		}
		if len(forms) != 1 {
			t.Fatalf("%s: %d forms", in, len(forms))
		}
		if got := forms[0].String(); got != in {
			t.Errorf("printed %q, want %q", got, in)
		}
	}
}

func TestReadStringEscapes(t *testing.T) {
	forms, _ := readString(t, `"a\nb\"c"`)
	if len(forms) != 1 || !forms[0].IsString() {
		t.Fatalf("forms = %v", forms)
	}
	if forms[0].Text != "a\nb\"c" {
		t.Errorf("unescaped = %q", forms[0].Text)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unclosed list", "(defn f [x] x", diag.ReadUnclosedDelimiter},
		{"unexpected closer", ")", diag.ReadUnexpectedCloser},
		{"mismatched closer", "(f]", diag.ReadUnexpectedCloser},
		{"odd map forms", "{:a}", diag.ReadOddMapEntries},
		{"duplicate map key", "{:a 1 :a 2}", diag.ReadDuplicateMapKey},
		{"unterminated string", `"open`, diag.ReadUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := readString(t, tt.input)
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("no %v diagnostic, got %v", tt.code, bag.Items())
			}
		})
	}
}

func TestReadContinuesAfterBadForm(t *testing.T) {
	forms, bag := readString(t, ") (defn f [x] x)")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the stray closer")
	}
	if len(forms) != 1 {
		t.Fatalf("got %d forms, want the surviving defn", len(forms))
	}
}

func TestReadDuplicateKeyKeepsFirst(t *testing.T) {
	forms, _ := readString(t, "{:a 1 :a 2}")
	if len(forms) != 1 {
		t.Fatalf("forms = %v", forms)
	}
	if len(forms[0].Entries) != 1 {
		t.Fatalf("entries = %v", forms[0].Entries)
	}
	if !sexp.Equal(forms[0].Entries[0].Val, sexp.Opaque("1")) {
		t.Errorf("kept value %s, want 1", forms[0].Entries[0].Val)
	}
}

func TestReadSpansCoverForms(t *testing.T) {
	forms, _ := readString(t, "  (f x)")
	if len(forms) != 1 {
		t.Fatalf("forms = %v", forms)
	}
	sp := forms[0].Span
	if sp.Start != 2 || sp.End != 7 {
		t.Errorf("span = %v, want 2-7", sp)
	}
}
