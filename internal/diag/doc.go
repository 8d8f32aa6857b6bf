// Package diag defines diagnostic codes, the Diagnostic value, the Bag
// collector used by the CLI surface, and the Error type returned by the
// definition parsers.
package diag
