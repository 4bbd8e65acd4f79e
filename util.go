package ftlprof

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	LE = binary.LittleEndian
	// Order is the byte order of every integer in a profile file. The game
	// wrote its structs straight from x86 memory.
	Order = LE
)

const BUFFER_SIZE = 4096

// DefaultBufferSize is used when a stream needs buffering and no size was given.
const DefaultBufferSize = BUFFER_SIZE

// empty is only ever read; WriteZeros slices it.
var empty [BUFFER_SIZE]byte

// Discard reads and drops exactly n bytes from r. It is safe to call
// concurrently on different readers.
func Discard(r io.Reader, n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 {
		return 0, ErrDiscardNegative
	}
	skipped, err := io.CopyN(io.Discard, r, n)
	if err == io.EOF && skipped > 0 {
		err = io.ErrUnexpectedEOF
	}
	return skipped, err
}

// fitsInt32 reports whether n can be stored in a wire length field.
func fitsInt32[T constraints.Integer](n T) bool {
	return int64(n) >= 0 && uint64(n) <= math.MaxInt32
}

// CheckBufferNotZeros returns ErrTrailingData if buf holds any non-zero byte.
func CheckBufferNotZeros(buf []byte) error {
	for i, b := range buf {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}
