package wiretype

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is returned when a length-prefixed payload could not be read
// in full.
var ErrShortRead = errors.New("wiretype: short read")

// ErrShortWrite is returned when a length-prefixed payload could not be
// written in full.
var ErrShortWrite = errors.New("wiretype: short write")

// writeLengthPrefixed writes a 4-byte big-endian length followed by b.
func writeLengthPrefixed(w io.Writer, b []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("wiretype: write length prefix: %w", err)
	}
	n, err := w.Write(b)
	if err != nil {
		return fmt.Errorf("wiretype: write payload: %w", err)
	}
	if n != len(b) {
		return ErrShortWrite
	}
	return nil
}

// readLengthPrefixed reads a 4-byte big-endian length followed by that many
// bytes.
func readLengthPrefixed(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("wiretype: read length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrShortRead
		}
		return nil, fmt.Errorf("wiretype: read payload: %w", err)
	}
	return b, nil
}
