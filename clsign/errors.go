package clsign

import "errors"

var (
	// ErrInvalidMessageCount is returned when the number of messages
	// passed to Sign or Verify does not match the scheme's N.
	ErrInvalidMessageCount = errors.New("clsign: invalid message count")

	// ErrInvalidScheme is returned when a scheme is constructed with a
	// message count too small to have a secret key.
	ErrInvalidScheme = errors.New("clsign: scheme requires at least one message")

	// ErrSignatureVerification names a failed signature check. Verify does
	// not return it: it reports failing pairing checks as (false, nil).
	ErrSignatureVerification = errors.New("clsign: signature verification failed")
)
