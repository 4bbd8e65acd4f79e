package ftlprof

import "io"

// BytesReader reads from an in-memory byte slice without copying it into a
// buffer first. UnmarshalBinary decodes through it.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// Seek implements the [io.Seeker] interface. Seeking past the end is
// allowed; the next Read reports io.EOF.
func (r *BytesReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.N) + offset
	case io.SeekEnd:
		abs = int64(len(r.B)) + offset
	default:
		return 0, ErrInvalidWhence
	}

	if abs < 0 {
		return 0, ErrInvalidSeek
	}

	r.N = int(abs)
	return abs, nil
}

// Len returns the number of bytes read.
func (r *BytesReader) Len() int { return r.N }

// Size returns the size of the underlying byte slice.
func (r *BytesReader) Size() int { return len(r.B) }

// Available returns the number of bytes left to read.
func (r *BytesReader) Available() int {
	length := len(r.B) - r.N
	if length <= 0 {
		return 0
	}
	return length
}
