package lexer

import (
	"sigil/internal/token"
)

const utf8RuneSelf = 0x80

// scanString: "..." с минимальной обработкой escape (\" и \\ и т.п.);
// перевод строки внутри литерала — ошибка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.report("unterminated-string", sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSymbolByte(b) || isDec(b) || b >= utf8RuneSelf {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Symbol, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSymbolByte(b) || isDec(b) || b == ':' || b >= utf8RuneSelf {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Keyword, Span: sp, Text: lx.text(sp)}
}

// scanNumber не классифицирует числа: int/float/ratio уходят как opaque-текст.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDec(b) || b == '.' || b == '/' || b == 'e' || b == 'E' || b == 'x' || b == 'X' ||
			isHex(b) || b == '+' || b == '-' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}

// ===== Классификаторы =====

// isSymbolByte: стартовые байты символов (без цифр).
func isSymbolByte(b byte) bool {
	if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
		return true
	}
	switch b {
	case '_', '+', '-', '*', '/', '!', '?', '<', '>', '=', '.', '&', '%', '$', '\'', '#':
		return true
	}
	return false
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
