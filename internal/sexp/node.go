package sexp

import (
	"sigil/internal/source"
)

// Kind discriminates the Node union.
type Kind uint8

const (
	// KindOpaque is the escape hatch: any atom the model does not
	// interpret (numbers, keywords, booleans). Carried through verbatim.
	KindOpaque Kind = iota
	// KindSymbol is an identifier such as a definition name or binder.
	KindSymbol
	// KindString is a string literal (docstrings).
	KindString
	// KindVector is a positional grouping, used for parameter lists.
	KindVector
	// KindList is a code list, used for clauses and whole definitions.
	KindList
	// KindMap is an associative literal with ordered, unique keys.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindOpaque:
		return "opaque"
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Entry is one key/value pair of a map literal. Order is insertion order.
type Entry struct {
	Key Node
	Val Node
}

// Node is one node of code-as-data. Which fields are meaningful depends on
// Kind: Text for symbols, strings and opaque atoms; Items for vectors and
// lists; Entries for maps. Span records where the reader saw the node and
// is ignored by structural comparison.
type Node struct {
	Kind    Kind
	Text    string
	Items   []Node
	Entries []Entry
	Span    source.Span
}

// Sym constructs a symbol node.
func Sym(name string) Node {
	return Node{Kind: KindSymbol, Text: name}
}

// Str constructs a string literal node.
func Str(value string) Node {
	return Node{Kind: KindString, Text: value}
}

// Opaque constructs an uninterpreted atom carrying its source text.
func Opaque(text string) Node {
	return Node{Kind: KindOpaque, Text: text}
}

// Keyword constructs a ':'-prefixed opaque atom.
func Keyword(name string) Node {
	return Node{Kind: KindOpaque, Text: ":" + name}
}

// Vec constructs a vector node.
func Vec(items ...Node) Node {
	return Node{Kind: KindVector, Items: items}
}

// List constructs a list node.
func List(items ...Node) Node {
	return Node{Kind: KindList, Items: items}
}

// Map constructs a map node from entries in order.
func Map(entries ...Entry) Node {
	return Node{Kind: KindMap, Entries: entries}
}

// IsSymbol reports whether the node is a symbol.
func (n Node) IsSymbol() bool { return n.Kind == KindSymbol }

// IsString reports whether the node is a string literal.
func (n Node) IsString() bool { return n.Kind == KindString }

// IsVector reports whether the node is a vector.
func (n Node) IsVector() bool { return n.Kind == KindVector }

// IsList reports whether the node is a list.
func (n Node) IsList() bool { return n.Kind == KindList }

// IsMap reports whether the node is a map literal.
func (n Node) IsMap() bool { return n.Kind == KindMap }

// Clone returns a deep copy of the node. The copy shares no slices with
// the original, so parsed structures never alias their input tree.
func (n Node) Clone() Node {
	out := Node{Kind: n.Kind, Text: n.Text, Span: n.Span}
	if n.Items != nil {
		out.Items = CloneItems(n.Items)
	}
	if n.Entries != nil {
		out.Entries = make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			out.Entries[i] = Entry{Key: e.Key.Clone(), Val: e.Val.Clone()}
		}
	}
	return out
}

// CloneItems deep-copies a slice of nodes.
func CloneItems(items []Node) []Node {
	out := make([]Node, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Equal reports structural equality, ignoring spans.
func Equal(a, b Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindSymbol, KindString, KindOpaque:
		return a.Text == b.Text
	case KindVector, KindList:
		return EqualItems(a.Items, b.Items)
	case KindMap:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if !Equal(a.Entries[i].Key, b.Entries[i].Key) {
				return false
			}
			if !Equal(a.Entries[i].Val, b.Entries[i].Val) {
				return false
			}
		}
		return true
	}
	return false
}

// EqualItems reports element-wise structural equality of two node slices.
func EqualItems(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
