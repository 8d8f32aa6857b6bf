package driver

import (
	"sigil/internal/defn"
	"sigil/internal/diag"
	"sigil/internal/reader"
	"sigil/internal/sexp"
	"sigil/internal/source"
)

// ParsedForm is one top-level form together with its destructured
// definition, when the form is a recognized fn or defn.
type ParsedForm struct {
	Form  sexp.Node
	Fn    *defn.ParsedFn
	Defn  *defn.ParsedDefn
	Valid bool
}

// IsDefinition reports whether the form parsed as fn or defn.
func (p ParsedForm) IsDefinition() bool {
	return p.Fn != nil || p.Defn != nil
}

// ParseResult содержит результат разбора одного файла.
type ParseResult struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Forms   []ParsedForm
	Bag     *diag.Bag
}

// Definitions returns only the recognized, well-formed definitions.
func (r *ParseResult) Definitions() []ParsedForm {
	out := make([]ParsedForm, 0, len(r.Forms))
	for _, f := range r.Forms {
		if f.IsDefinition() {
			out = append(out, f)
		}
	}
	return out
}

// ParseFile loads one file and destructures every fn/defn form in it.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, id, path, maxDiagnostics), nil
}

// ParseBytes is ParseFile for in-memory content (stdin, tests).
func ParseBytes(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return parseLoaded(fs, id, name, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, id source.FileID, path string, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	forms := reader.New(fs.Get(id), bag).ReadAll()

	result := &ParseResult{
		Path:    path,
		FileID:  id,
		FileSet: fs,
		Bag:     bag,
	}
	for _, form := range forms {
		result.Forms = append(result.Forms, destructure(form, bag))
	}
	return result
}

// destructure recognizes (fn ...) and (defn ...) forms and parses them.
// Anything else is carried through untouched.
func destructure(form sexp.Node, bag *diag.Bag) ParsedForm {
	out := ParsedForm{Form: form, Valid: true}
	if !form.IsList() || len(form.Items) == 0 || !form.Items[0].IsSymbol() {
		return out
	}

	switch form.Items[0].Text {
	case defn.TagFn:
		parsed, err := defn.ParseFn(form.Items[1:])
		if err != nil {
			reportParseError(bag, err, form.Span)
			out.Valid = false
			return out
		}
		out.Fn = &parsed
	case defn.TagDefn:
		parsed, err := defn.ParseDefn(form.Items[1:])
		if err != nil {
			reportParseError(bag, err, form.Span)
			out.Valid = false
			return out
		}
		out.Defn = &parsed
	}
	return out
}

func reportParseError(bag *diag.Bag, err error, sp source.Span) {
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.CodeOf(err),
		Message:  err.Error(),
		Primary:  sp,
	})
}
