// Package defn parses and rebuilds the surface syntax shared by function
// literals and named definitions: an optional name, then either a single
// bare clause or a list of clauses, where each clause is a parameter
// vector, an optional pre/post-condition map, and body forms. Named
// definitions additionally carry an optional docstring and metadata map.
//
// Parsing and building are exact inverses over well-formed input. Body
// forms are carried through untouched; the grammar never looks inside
// them.
package defn
