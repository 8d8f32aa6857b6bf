// Package sexp models host code as data: a small tagged union of symbols,
// strings, vectors, lists, map literals, and an opaque escape hatch for
// atoms the definition grammar never interprets. Trees are treated as
// immutable values; anything that keeps a node makes a Clone.
package sexp
