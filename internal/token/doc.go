// Package token defines the token kinds produced by the s-expression
// scanner: delimiters for lists, vectors and maps, plus the four atom
// categories (symbols, keywords, numbers, strings).
package token
