package ftlprof

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("ftlprof: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a requested buffer size bufio would silently round up.
	ErrSizeTooSmall = errors.New("ftlprof: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was handed a bufio
	// reader/writer with a smaller buffer than requested.
	ErrAlreadyBuffered = errors.New("ftlprof: reader or writer is already buffered")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("ftlprof: WriteTo called with a nil io.Writer")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("ftlprof: ReadTo called with a nil io.ReaderFrom")

	// ErrInvalidSeek indicates a seek to a negative position.
	ErrInvalidSeek = errors.New("ftlprof: seek to a invalid position")

	// ErrUnsupportedNegativeSeek indicates a backward seek on a forward-only seeker.
	ErrUnsupportedNegativeSeek = errors.New("ftlprof: unsupported negative offset for forward-only seeker")

	// ErrInvalidWhence indicates an unsupported 'whence' for a Seek operation.
	ErrInvalidWhence = errors.New("ftlprof: unsupported whence for forward-only seeker")

	// ErrDiscardNegative indicates a Discard or Skip with a negative byte count.
	ErrDiscardNegative = errors.New("ftlprof: cannot discard negative number of bytes")

	// ErrTrailingData is returned by UnmarshalBinaryGeneric when non-zero bytes
	// follow the decoded structure.
	ErrTrailingData = errors.New("ftlprof: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that the stream ended before a field, or the
	// length a field declared, was fully read.
	ErrTruncatedData = errors.New("ftlprof: truncated data")

	// ErrStringTooLarge indicates a string or collection whose length does not
	// fit the 4-byte length field of the wire format.
	ErrStringTooLarge = errors.New("ftlprof: length exceeds int32 range")

	// ErrNegativeLength indicates a string length or element count read as a
	// negative int32.
	ErrNegativeLength = errors.New("ftlprof: negative length field")
)

// truncated maps end-of-stream conditions to ErrTruncatedData. Inside a
// profile even a clean EOF means a field is missing. Every other error is an
// I/O failure of the underlying stream and is returned unchanged.
func truncated(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTruncatedData) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncatedData, io.ErrUnexpectedEOF)
	}
	return err
}
