package driver

import (
	"strings"

	"sigil/internal/defn"
	"sigil/internal/sexp"
)

// Rebuild returns the canonical tree for a parsed form: recognized
// definitions are rebuilt from their destructured value, everything else
// passes through as read.
func Rebuild(p ParsedForm) sexp.Node {
	switch {
	case p.Fn != nil:
		return defn.BuildFn(*p.Fn)
	case p.Defn != nil:
		return defn.BuildDefn(*p.Defn)
	default:
		return p.Form
	}
}

// Format renders every form of a parse result in canonical shape, one
// top-level form per line.
func Format(result *ParseResult) string {
	var sb strings.Builder
	for _, f := range result.Forms {
		if !f.Valid {
			// malformed definition: keep the original text shape
			sb.WriteString(f.Form.String())
		} else {
			sb.WriteString(Rebuild(f).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
