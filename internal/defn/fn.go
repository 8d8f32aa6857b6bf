package defn

import (
	"sigil/internal/diag"
	"sigil/internal/sexp"
)

// Leading symbols of rebuilt forms.
const (
	TagFn   = "fn"
	TagDefn = "defn"
)

// ParsedFn is a destructured function literal: an optional name and one
// clause per arity.
type ParsedFn struct {
	Name    *sexp.Node
	Clauses []Clause
}

// ParseFn destructures the element sequence of a function literal (the
// forms after the fn tag): an optional leading symbol names the function,
// then either a single bare clause or a sequence of clause lists.
func ParseFn(forms []sexp.Node) (ParsedFn, error) {
	name, rest := ExtractPrefix(forms, cloneRef, sexp.Node.IsSymbol, (*sexp.Node)(nil))

	clauses, err := parseClauses(rest)
	if err != nil {
		return ParsedFn{}, err
	}
	return ParsedFn{Name: name, Clauses: clauses}, nil
}

// parseClauses resolves the single-vs-multi-clause ambiguity on rest and
// parses every clause under the context chosen there. ParseDefn delegates
// here directly; by that point the leading symbol is already gone, so no
// separate name handling is needed.
func parseClauses(rest []sexp.Node) ([]Clause, error) {
	if len(rest) == 0 || (!rest[0].IsVector() && !rest[0].IsList()) {
		return nil, diag.Invalid(diag.DefMissingParams, "parameter declaration missing")
	}

	if rest[0].IsVector() {
		// Bare parameter vector: the whole remainder is one clause.
		c, err := parseClause(rest, singleClause)
		if err != nil {
			return nil, err
		}
		return []Clause{c}, nil
	}

	clauses := make([]Clause, 0, len(rest))
	for _, form := range rest {
		var c Clause
		var err error
		switch form.Kind {
		case sexp.KindList, sexp.KindVector:
			c, err = parseClause(form.Items, multiClause)
		default:
			err = diag.Invalid(diag.DefBadParamVector,
				"parameter declaration %s should be a vector", form)
		}
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// BuildFn reassembles a function literal. A lone clause is spliced
// directly after the name; several clauses are each wrapped in their own
// list. Total for any well-formed ParsedFn.
func BuildFn(fn ParsedFn) sexp.Node {
	items := make([]sexp.Node, 0, 2+len(fn.Clauses))
	items = append(items, sexp.Sym(TagFn))
	if fn.Name != nil {
		items = append(items, fn.Name.Clone())
	}
	items = appendClauseForms(items, fn.Clauses)
	return sexp.List(items...)
}

func appendClauseForms(items []sexp.Node, clauses []Clause) []sexp.Node {
	if len(clauses) == 1 {
		return append(items, buildClause(clauses[0])...)
	}
	for _, c := range clauses {
		items = append(items, sexp.List(buildClause(c)...))
	}
	return items
}
