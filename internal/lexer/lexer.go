package lexer

import (
	"sigil/internal/source"
	"sigil/internal/token"
)

// Lexer produces s-expression tokens from one source file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '(':
		return lx.scanDelimiter(token.LParen)
	case ch == ')':
		return lx.scanDelimiter(token.RParen)
	case ch == '[':
		return lx.scanDelimiter(token.LBracket)
	case ch == ']':
		return lx.scanDelimiter(token.RBracket)
	case ch == '{':
		return lx.scanDelimiter(token.LBrace)
	case ch == '}':
		return lx.scanDelimiter(token.RBrace)
	case ch == '"':
		return lx.scanString()
	case ch == ':':
		return lx.scanKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case lx.isSignedNumber():
		return lx.scanNumber()
	case isSymbolByte(ch) || ch >= utf8RuneSelf:
		return lx.scanSymbol()
	default:
		return lx.scanUnknown()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia съедает пробелы, запятые и построчные комментарии (';').
// Комментарии не сохраняются — пересобранные формы каноничны.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', ',':
			lx.cursor.Bump()
		case ';':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanDelimiter(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.report("unknown-char", sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// isSignedNumber распознаёт "+5" / "-5": знак считается символом,
// только если за ним не идёт цифра.
func (lx *Lexer) isSignedNumber() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && (b0 == '+' || b0 == '-') && isDec(b1)
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
