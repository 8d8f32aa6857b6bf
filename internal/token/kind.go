package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace

	// Symbol represents an identifier token such as a definition name.
	Symbol
	// Keyword represents a ':'-prefixed atom.
	Keyword
	// Number represents a numeric literal. The scanner does not classify
	// numbers further; they are carried as opaque text.
	Number
	// String represents a double-quoted string literal.
	String
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case Symbol:
		return "Symbol"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case String:
		return "String"
	}
	return "Unknown"
}
