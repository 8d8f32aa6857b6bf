package diag

import (
	"fmt"
)

// Code identifies one diagnostic kind with a stable numeric ID.
type Code uint16

const (
	// UnknownCode - на первое время
	UnknownCode Code = 0

	// Ридерные
	ReadInfo               Code = 1000
	ReadUnknownChar        Code = 1001
	ReadUnterminatedString Code = 1002
	ReadUnclosedDelimiter  Code = 1003
	ReadUnexpectedCloser   Code = 1004
	ReadOddMapEntries      Code = 1005
	ReadDuplicateMapKey    Code = 1006

	// Разбор определений
	DefInfo           Code = 2000
	DefMissingName    Code = 2001
	DefMissingParams  Code = 2002
	DefBadParamVector Code = 2003
	DefBadSignature   Code = 2004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	ReadInfo:               "reader information",
	ReadUnknownChar:        "unknown character",
	ReadUnterminatedString: "unterminated string literal",
	ReadUnclosedDelimiter:  "unclosed delimiter",
	ReadUnexpectedCloser:   "unexpected closing delimiter",
	ReadOddMapEntries:      "map literal with odd number of forms",
	ReadDuplicateMapKey:    "duplicate key in map literal",

	DefInfo:           "definition information",
	DefMissingName:    "definition name missing",
	DefMissingParams:  "parameter declaration missing",
	DefBadParamVector: "parameter declaration is not a vector",
	DefBadSignature:   "invalid definition signature",
}

// ID returns the stable string form of the code, grouped by phase.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("READ%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DEF%04d", ic)
	}
	return "E0000"
}

// Title returns a short human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return c.ID()
}
