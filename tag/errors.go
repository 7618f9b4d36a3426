package tag

import (
	"errors"
	"fmt"
)

// ErrIllegalDerivation indicates an attempt to derive an unmodified tag from
// a modified parent.
var ErrIllegalDerivation = errors.New("illegal tag derivation")

// DerivationError reports an [ErrIllegalDerivation] with the offending
// parent, and the child name if one was given.
type DerivationError struct {
	Parent    *Tag
	ChildName string
}

// Error implements the error interface.
func (e *DerivationError) Error() string {
	name := e.ChildName
	if name == "" {
		name = "<anonymous>"
	}

	return fmt.Sprintf("tag: cannot define %q from modified parent %q", name, e.Parent.String())
}

// Unwrap allows matching with [errors.Is] against [ErrIllegalDerivation].
func (e *DerivationError) Unwrap() error {
	return ErrIllegalDerivation
}
