package selector

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector indicates a malformed selector string: unbalanced
// quotes, an empty target piece, a stray "!" or "/...", or an unrecognized
// character.
var ErrInvalidSelector = errors.New("selector: invalid selector")

// CompileError reports an [ErrInvalidSelector] with the offending part and
// the underlying parse reason.
type CompileError struct {
	Part   string
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("selector: invalid part %q: %s", e.Part, e.Reason)
}

func (e *CompileError) Unwrap() error {
	return ErrInvalidSelector
}
