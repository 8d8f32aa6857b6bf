package reader

import (
	"sigil/internal/diag"
	"sigil/internal/lexer"
	"sigil/internal/sexp"
	"sigil/internal/source"
	"sigil/internal/token"
)

// Reader turns one source file into a sequence of top-level sexp trees.
// Problems go into the Bag; reading continues best-effort so a file with
// one bad form still yields the others.
type Reader struct {
	file *source.File
	lx   *lexer.Lexer
	bag  *diag.Bag
}

func New(file *source.File, bag *diag.Bag) *Reader {
	return &Reader{
		file: file,
		lx:   lexer.New(file, lexer.Options{Reporter: lexReporter{bag: bag}}),
		bag:  bag,
	}
}

// ReadAll reads top-level forms until EOF.
func (r *Reader) ReadAll() []sexp.Node {
	var out []sexp.Node
	for {
		tok := r.lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		if tok.IsCloser() {
			r.err(diag.ReadUnexpectedCloser, tok.Span, "unexpected %q", tok.Text)
			continue
		}
		if form, ok := r.readForm(tok); ok {
			out = append(out, form)
		}
	}
}

// readForm reads the form starting at tok. ok is false when the form had
// to be abandoned (already reported).
func (r *Reader) readForm(tok token.Token) (sexp.Node, bool) {
	switch tok.Kind {
	case token.Symbol:
		n := sexp.Sym(tok.Text)
		n.Span = tok.Span
		return n, true
	case token.String:
		n := sexp.Str(unescape(tok.Text))
		n.Span = tok.Span
		return n, true
	case token.Keyword, token.Number:
		n := sexp.Opaque(tok.Text)
		n.Span = tok.Span
		return n, true
	case token.LParen, token.LBracket:
		return r.readSeq(tok)
	case token.LBrace:
		return r.readMap(tok)
	case token.Invalid:
		// лексер уже отчитался
		return sexp.Node{}, false
	default:
		r.err(diag.ReadUnknownChar, tok.Span, "unexpected token %q", tok.Text)
		return sexp.Node{}, false
	}
}

// readSeq reads a list or vector up to the matching closer.
func (r *Reader) readSeq(open token.Token) (sexp.Node, bool) {
	items, endSpan, ok := r.readUntil(open)
	if !ok {
		return sexp.Node{}, false
	}
	var n sexp.Node
	if open.Kind == token.LParen {
		n = sexp.List(items...)
	} else {
		n = sexp.Vec(items...)
	}
	n.Span = open.Span.Cover(endSpan)
	return n, true
}

// readMap reads a map literal: an even number of forms, unique keys.
func (r *Reader) readMap(open token.Token) (sexp.Node, bool) {
	forms, endSpan, ok := r.readUntil(open)
	if !ok {
		return sexp.Node{}, false
	}
	span := open.Span.Cover(endSpan)
	if len(forms)%2 != 0 {
		r.err(diag.ReadOddMapEntries, span, "map literal must contain an even number of forms")
		return sexp.Node{}, false
	}

	entries := make([]sexp.Entry, 0, len(forms)/2)
	for i := 0; i < len(forms); i += 2 {
		key, val := forms[i], forms[i+1]
		if hasKey(entries, key) {
			r.err(diag.ReadDuplicateMapKey, key.Span, "duplicate key %s in map literal", key)
			continue
		}
		entries = append(entries, sexp.Entry{Key: key, Val: val})
	}
	n := sexp.Map(entries...)
	n.Span = span
	return n, true
}

// readUntil collects forms until the closer matching open. Mismatched
// closers and EOF abandon the form.
func (r *Reader) readUntil(open token.Token) (items []sexp.Node, endSpan source.Span, ok bool) {
	closer := open.Kind.Closer()
	for {
		tok := r.lx.Next()
		switch {
		case tok.Kind == token.EOF:
			r.err(diag.ReadUnclosedDelimiter, open.Span, "unclosed %q", open.Text)
			return nil, source.Span{}, false
		case tok.Kind == closer:
			return items, tok.Span, true
		case tok.IsCloser():
			r.err(diag.ReadUnexpectedCloser, tok.Span, "expected closing for %q, found %q", open.Text, tok.Text)
			return nil, source.Span{}, false
		default:
			if form, formOK := r.readForm(tok); formOK {
				items = append(items, form)
			}
		}
	}
}

func hasKey(entries []sexp.Entry, key sexp.Node) bool {
	for i := range entries {
		if sexp.Equal(entries[i].Key, key) {
			return true
		}
	}
	return false
}

func (r *Reader) err(code diag.Code, sp source.Span, format string, args ...any) {
	if r.bag == nil {
		return
	}
	e := diag.Invalid(code, format, args...)
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  e.Message,
		Primary:  sp,
	})
}
