package defn

import (
	"sigil/internal/diag"
	"sigil/internal/sexp"
)

// ParsedDefn is a destructured named definition: a required name, merged
// metadata entries in insertion order, and one clause per arity.
type ParsedDefn struct {
	Name    sexp.Node
	Meta    []sexp.Entry
	Clauses []Clause
}

// ParseDefn destructures the element sequence of a named definition (the
// forms after the defn tag). The name is required; a docstring seeds the
// :doc metadata entry; an explicit metadata map is merged over it, its
// entries winning on key collision. The remainder goes through the same
// clause resolution as function literals.
func ParseDefn(forms []sexp.Node) (ParsedDefn, error) {
	if len(forms) == 0 || !forms[0].IsSymbol() {
		return ParsedDefn{}, diag.Invalid(diag.DefMissingName, "definition name must be a symbol")
	}
	name := forms[0].Clone()
	rest := forms[1:]

	doc, rest := ExtractPrefix(rest, cloneRef, sexp.Node.IsString, (*sexp.Node)(nil))
	var meta []sexp.Entry
	if doc != nil {
		meta = append(meta, sexp.Entry{Key: sexp.Keyword("doc"), Val: *doc})
	}

	metaMap, rest := ExtractPrefix(rest, cloneRef, sexp.Node.IsMap, (*sexp.Node)(nil))
	if metaMap != nil {
		meta = mergeEntries(meta, metaMap.Entries)
	}

	clauses, err := parseClauses(rest)
	if err != nil {
		return ParsedDefn{}, err
	}
	return ParsedDefn{Name: name, Meta: meta, Clauses: clauses}, nil
}

// mergeEntries merges over into base. A colliding key keeps its position
// in base but takes the value from over; fresh keys append in order.
func mergeEntries(base []sexp.Entry, over []sexp.Entry) []sexp.Entry {
	out := base
	for _, e := range over {
		replaced := false
		for i := range out {
			if sexp.Equal(out[i].Key, e.Key) {
				out[i].Val = e.Val.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, sexp.Entry{Key: e.Key.Clone(), Val: e.Val.Clone()})
		}
	}
	return out
}

// BuildDefn reassembles a named definition. Metadata is always re-emitted
// as a single map after the name, even when it holds only a :doc entry;
// the docstring is never split back out. Total for any well-formed
// ParsedDefn.
func BuildDefn(d ParsedDefn) sexp.Node {
	items := make([]sexp.Node, 0, 3+len(d.Clauses))
	items = append(items, sexp.Sym(TagDefn), d.Name.Clone())
	if len(d.Meta) > 0 {
		entries := make([]sexp.Entry, len(d.Meta))
		for i, e := range d.Meta {
			entries[i] = sexp.Entry{Key: e.Key.Clone(), Val: e.Val.Clone()}
		}
		items = append(items, sexp.Map(entries...))
	}
	items = appendClauseForms(items, d.Clauses)
	return sexp.List(items...)
}
