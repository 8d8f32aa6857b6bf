package reader

import (
	"strings"
)

// unescape strips the surrounding quotes from a string token and resolves
// the basic escapes. Unknown escapes keep the escaped character as-is.
func unescape(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	if !strings.ContainsRune(text, '\\') {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b != '\\' || i+1 >= len(text) {
			sb.WriteByte(b)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte(text[i])
		}
	}
	return sb.String()
}
