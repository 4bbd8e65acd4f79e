package ftlprof

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Reader decodes the scalar wire types of a profile from a stream: 4-byte
// integers, runs of them, and length-prefixed strings.
//
// It tracks the first error. Once set, every later read is a no-op and leaves
// its destination untouched, so a record decoder can issue all of its reads
// and check Err once at the end.
type Reader struct {
	r     source
	count int64 // total bytes consumed
	err   error // first error encountered
}

var _ io.ReadSeeker = (*Reader)(nil)

// NewReaderSize creates a Reader buffering r with a buffer of the given size.
// In-memory readers are used as they are. A size <= 0 selects DefaultBufferSize.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	if size <= 0 {
		size = DefaultBufferSize
	}

	switch reader := r.(type) {
	// Share the source of an enclosing Reader so nested decoders see one position.
	case *Reader:
		return &Reader{r: reader.r, count: reader.count}, nil

	// A second bufio layer would hide bytes from the first one.
	case *bufio.Reader:
		if reader.Size() >= size {
			return &Reader{r: &bufioReaderAdapter{Reader: reader}}, nil
		}
		return nil, ErrAlreadyBuffered

	case *BytesReader:
		return &Reader{r: reader}, nil
	case *bytes.Reader:
		return &Reader{r: &bytesReaderAdapter{reader}}, nil
	case *bytes.Buffer:
		return &Reader{r: &bytesBufferReaderAdapter{Buffer: reader}}, nil
	}

	if size < 16 {
		return nil, ErrSizeTooSmall
	}

	return &Reader{
		r: &bufioReaderAdapter{Reader: bufio.NewReaderSize(r, size), seeker: ForwardSeeker(r)},
	}, nil
}

// NewReader creates a new Reader with the default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 0)
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	if err != nil && err != io.EOF {
		r.setError(err)
	}
	return n, err
}

// Seek moves the read position. Streams that cannot seek only move forward.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return r.count, r.err
	}
	newPos, err := r.r.Seek(offset, whence)
	if err != nil {
		r.setError(err)
		return r.count, err
	}
	r.count = newPos
	return newPos, nil
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// ReadTo lets w decode itself from the stream. An end of stream inside w is
// reported as ErrTruncatedData.
func (r *Reader) ReadTo(w io.ReaderFrom) {
	if r.err != nil {
		return
	}
	if w == nil {
		r.setError(ErrReadToNil)
		return
	}
	n, err := w.ReadFrom(r.r)
	r.count += n
	r.setError(truncated(err))
}

// readFull reads exactly n bytes. Running out of input is a truncation even
// when no byte of the field was available.
func (r *Reader) readFull(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	r.count += int64(read)
	if err != nil {
		r.setError(truncated(err))
		return nil
	}
	return buf
}

// Skip advances past n bytes without interpreting them.
func (r *Reader) Skip(n int64) {
	if r.err != nil {
		return
	}
	skipped, err := Discard(r.r, n)
	r.count += skipped
	r.setError(truncated(err))
}

// --- Primitive Read Operations ---

func (r *Reader) ReadInt32(dest *int32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = int32(Order.Uint32(buf))
	}
}

// ReadInt32s fills dst from one contiguous run of len(dst) integers. Either
// every element is set or, on error, none is.
func (r *Reader) ReadInt32s(dst []int32) {
	buf := r.readFull(4 * len(dst))
	if r.err != nil {
		return
	}
	for i := range dst {
		dst[i] = int32(Order.Uint32(buf[4*i:]))
	}
}

// ReadLength reads a 4-byte string length or element count.
func (r *Reader) ReadLength(dest *int) {
	var n int32
	r.ReadInt32(&n)
	if r.err != nil {
		return
	}
	if n < 0 {
		r.setError(fmt.Errorf("%w: %d at offset %d", ErrNegativeLength, n, r.count-4))
		return
	}
	*dest = int(n)
}

// ReadString reads a length-prefixed string. The bytes are kept as they are;
// no terminator is expected and no encoding is checked. Long strings are
// read in chunks so a corrupt length cannot force a huge allocation before
// the stream runs dry.
func (r *Reader) ReadString(dest *string) {
	var length int
	r.ReadLength(&length)
	if r.err != nil {
		return
	}

	if length <= BUFFER_SIZE {
		buf := r.readFull(length)
		if r.err == nil {
			*dest = string(buf)
		}
		return
	}

	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	n, err := io.CopyN(buf, r.r, int64(length))
	r.count += n
	if err != nil {
		r.setError(truncated(err))
		return
	}
	*dest = buf.String()
}
