package sexp

import (
	"strconv"
	"strings"
)

// String renders the node back to surface syntax.
func (n Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n Node) write(sb *strings.Builder) {
	switch n.Kind {
	case KindSymbol, KindOpaque:
		sb.WriteString(n.Text)
	case KindString:
		sb.WriteString(strconv.Quote(n.Text))
	case KindVector:
		sb.WriteByte('[')
		writeItems(sb, n.Items)
		sb.WriteByte(']')
	case KindList:
		sb.WriteByte('(')
		writeItems(sb, n.Items)
		sb.WriteByte(')')
	case KindMap:
		sb.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.Key.write(sb)
			sb.WriteByte(' ')
			e.Val.write(sb)
		}
		sb.WriteByte('}')
	}
}

func writeItems(sb *strings.Builder, items []Node) {
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		it.write(sb)
	}
}

// FormatForms renders a sequence of forms as a parenthesized list. Used in
// error messages that report a whole remainder rather than a single node.
func FormatForms(items []Node) string {
	return List(items...).String()
}
