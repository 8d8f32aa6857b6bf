package reader

import (
	"sigil/internal/diag"
	"sigil/internal/source"
)

// lexReporter адаптирует lexer.Reporter к diag.Bag.
type lexReporter struct {
	bag *diag.Bag
}

func (l lexReporter) Report(kind string, sp source.Span, msg string) {
	if l.bag == nil {
		return
	}
	code := diag.ReadInfo
	switch kind {
	case "unknown-char":
		code = diag.ReadUnknownChar
	case "unterminated-string":
		code = diag.ReadUnterminatedString
	}
	l.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  sp,
	})
}
