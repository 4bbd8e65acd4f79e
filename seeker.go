package ftlprof

import (
	"fmt"
	"io"
)

// forwardSeeker gives a plain io.Reader the forward half of io.Seeker by
// reading and dropping bytes. Pipes, sockets and decompressors all land here.
type forwardSeeker struct {
	r      io.Reader
	offset int64
}

// ForwardSeeker returns r itself when it can already seek, otherwise a
// forward-only io.ReadSeeker over it.
func ForwardSeeker(r io.Reader) io.ReadSeeker {
	if r == nil {
		panic("ftlprof: ForwardSeeker called with a nil io.Reader")
	}
	if seeker, ok := r.(io.ReadSeeker); ok {
		return seeker
	}
	return &forwardSeeker{r: r}
}

func (s *forwardSeeker) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.offset += int64(n)
	return n, err
}

// Seek supports io.SeekCurrent and io.SeekStart as long as the target is not
// behind the current offset.
func (s *forwardSeeker) Seek(offset int64, whence int) (int64, error) {
	var skip int64

	switch whence {
	case io.SeekCurrent:
		skip = offset
	case io.SeekStart:
		if offset < s.offset {
			return s.offset, fmt.Errorf("%w: cannot seek from start to %d (current: %d)", ErrUnsupportedNegativeSeek, offset, s.offset)
		}
		skip = offset - s.offset
	default:
		return s.offset, fmt.Errorf("%w: value %d is not supported", ErrInvalidWhence, whence)
	}

	if skip < 0 {
		return s.offset, ErrUnsupportedNegativeSeek
	}
	if skip == 0 {
		return s.offset, nil
	}

	skipped, err := Discard(s.r, skip)
	s.offset += skipped
	return s.offset, err
}
