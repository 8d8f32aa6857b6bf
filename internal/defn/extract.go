package defn

import (
	"sigil/internal/sexp"
)

// ExtractPrefix peels the first form off forms when pred accepts it,
// returning transform(first) and the remainder. Otherwise it returns def
// and forms untouched. It never consumes more than one element and never
// fails on its own; every optional-prefix decision of the grammar (name,
// docstring, metadata, pre/post map) is an instantiation of this.
func ExtractPrefix[T any](forms []sexp.Node, transform func(sexp.Node) T, pred func(sexp.Node) bool, def T) (T, []sexp.Node) {
	if len(forms) == 0 || !pred(forms[0]) {
		return def, forms
	}
	return transform(forms[0]), forms[1:]
}

// cloneRef is the transform used at every prefix site: copy the matched
// node out of the input tree and hand back a pointer, so "absent" stays
// distinguishable from "present but empty".
func cloneRef(n sexp.Node) *sexp.Node {
	c := n.Clone()
	return &c
}
