package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sigil/internal/diag"
	"sigil/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	ShowPreview bool
	// Width ограничивает ширину строки-превью, 0 — не ограничено.
	Width int
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Faint)
)

// Pretty форматирует диагностики в человекочитаемый вид:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// и, опционально, строку-превью с указателем на Span.
// Ожидается bag.Sort() заранее.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	pos := fs.SpanPosition(d.Primary)

	location := fmt.Sprintf("%s:%d:%d:", file.Path, pos.Line, pos.Col)
	sev := d.Severity.String()
	if opts.Color {
		location = posColor.Sprint(location)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", location, sev, d.Code.ID(), d.Message)

	if opts.ShowPreview {
		writePreview(w, file, d.Primary, pos, opts)
	}
	for _, note := range d.Notes {
		npos := fs.SpanPosition(note.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, npos.Line, npos.Col, note.Msg)
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

// writePreview prints the source line holding the span start with a caret
// underneath. Long lines get truncated to opts.Width.
func writePreview(w io.Writer, file *source.File, sp source.Span, pos source.LineCol, opts PrettyOpts) {
	line := lineAt(file, sp.Start)
	caretCol := int(pos.Col) - 1
	if opts.Width > 0 && runewidth.StringWidth(line) > opts.Width {
		line = runewidth.Truncate(line, opts.Width, "...")
	}
	fmt.Fprintf(w, "  | %s\n", line)
	if caretCol >= 0 && caretCol <= len(line) {
		fmt.Fprintf(w, "  | %s^\n", strings.Repeat(" ", caretCol))
	}
}

// lineAt возвращает строку файла, содержащую байт off (без '\n').
func lineAt(file *source.File, off uint32) string {
	content := file.Content
	if int(off) > len(content) {
		return ""
	}
	start := int(off)
	for start > 0 && content[start-1] != '\n' {
		start--
	}
	end := int(off)
	for end < len(content) && content[end] != '\n' {
		end++
	}
	return string(content[start:end])
}
