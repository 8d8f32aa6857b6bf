package diag

import (
	"errors"
	"fmt"
)

// Error is the failure value returned by parsing. It pairs a Code with a
// formatted message so call sites can match on the kind instead of the text.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Invalid constructs a parse failure. It is the single factory all
// malformed-input conditions go through.
func Invalid(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the Code from err, or UnknownCode if err is not an *Error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}
