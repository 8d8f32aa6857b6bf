package token

import (
	"sigil/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsAtom reports whether the token stands alone as a single form.
func (t Token) IsAtom() bool {
	switch t.Kind {
	case Symbol, Keyword, Number, String:
		return true
	default:
		return false
	}
}

// IsOpener reports whether the token opens a collection form.
func (t Token) IsOpener() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsCloser reports whether the token closes a collection form.
func (t Token) IsCloser() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// Closer returns the closing kind matching an opener, or Invalid.
func (k Kind) Closer() Kind {
	switch k {
	case LParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace:
		return RBrace
	default:
		return Invalid
	}
}
