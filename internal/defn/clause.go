package defn

import (
	"sigil/internal/diag"
	"sigil/internal/sexp"
)

// Clause is one arity-variant of a definition: a parameter vector, an
// optional pre/post-condition map, and the body forms in order.
type Clause struct {
	Params  sexp.Node
	PrePost *sexp.Node
	Body    []sexp.Node
}

// clauseContext records which grammar branch was taken for the whole
// declaration. It is decided once, from the shape of the first form after
// the optional name, and reused for every clause — so a malformed clause
// deep in a multi-clause list is still reported with the multi-clause
// wording. Changing this would change observable error messages.
type clauseContext uint8

const (
	singleClause clauseContext = iota
	multiClause
)

// parseClause parses one raw clause: params, optional pre/post map, body.
// raw is the element sequence of a clause list, or the whole remainder in
// the single-clause case.
func parseClause(raw []sexp.Node, ctx clauseContext) (Clause, error) {
	if len(raw) == 0 || !raw[0].IsVector() {
		return Clause{}, badParams(raw, ctx)
	}
	params := raw[0].Clone()

	prePost, body := ExtractPrefix(raw[1:], cloneRef, sexp.Node.IsMap, (*sexp.Node)(nil))

	return Clause{
		Params:  params,
		PrePost: prePost,
		Body:    sexp.CloneItems(body),
	}, nil
}

// badParams selects the error wording by context. The multi-clause branch
// names the offending parameter slot; the single-clause branch reports the
// entire remainder it was handed.
func badParams(raw []sexp.Node, ctx clauseContext) error {
	if ctx == multiClause {
		var offender sexp.Node
		if len(raw) > 0 {
			offender = raw[0]
		}
		return diag.Invalid(diag.DefBadParamVector,
			"parameter declaration %s should be a vector", offender)
	}
	return diag.Invalid(diag.DefBadSignature,
		"invalid signature: %s should be a list", sexp.FormatForms(raw))
}

// buildClause is the exact inverse of parseClause: params, then the
// pre/post map if present, then the body forms.
func buildClause(c Clause) []sexp.Node {
	out := make([]sexp.Node, 0, 2+len(c.Body))
	out = append(out, c.Params.Clone())
	if c.PrePost != nil {
		out = append(out, c.PrePost.Clone())
	}
	out = append(out, sexp.CloneItems(c.Body)...)
	return out
}
