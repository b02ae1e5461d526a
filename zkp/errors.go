package zkp

import "errors"

var (
	// ErrInstanceNotUpdated is returned by operations that require Update
	// to have been called first.
	ErrInstanceNotUpdated = errors.New("zkp: instance has not been updated")

	// ErrVariableOutOfRange names a variable whose index does not belong to
	// the instance's owning proof description. No function in this package
	// returns it; Instance accessors index their slices directly.
	ErrVariableOutOfRange = errors.New("zkp: variable index out of range")

	// ErrMessageCountMismatch names a signature-possession block whose
	// variable count does not match its signature scheme. RequireSig does
	// not return it: it panics on that condition.
	ErrMessageCountMismatch = errors.New("zkp: message count mismatch")

	// ErrInvalidElement names a parsed scalar or group element that fails
	// validation on read. No function in this package returns it; read
	// failures surface as the wiretype or curve library's own errors.
	ErrInvalidElement = errors.New("zkp: invalid element")
)
