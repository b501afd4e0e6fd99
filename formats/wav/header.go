// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the size of the canonical PCM WAV header: RIFF (12 bytes),
// fmt chunk (24 bytes) and the data chunk header (8 bytes).
const HeaderSize = 44

// SkipHeader reads exactly size bytes from r and throws them away.
// Nothing in the header is interpreted.
//
// It returns the number of bytes consumed. ErrEmptyInput is returned when r
// has nothing to read, ErrShortHeader when it ends before size bytes. Both
// leave r at its end, so callers may treat them as warnings.
func SkipHeader(r io.Reader, size int) (int, error) {
	if size < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHeaderSize, size)
	}
	if size == 0 {
		return 0, nil
	}

	var scratch [HeaderSize]byte
	buf := scratch[:]
	if size > len(scratch) {
		buf = make([]byte, size)
	}

	n, err := io.ReadFull(r, buf[:size])
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		return 0, ErrEmptyInput
	case errors.Is(err, io.ErrUnexpectedEOF):
		return n, fmt.Errorf("%w: got %d of %d bytes", ErrShortHeader, n, size)
	}

	return n, fmt.Errorf("reading header: %w", err)
}
