package ftlprof

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Writer encodes the scalar wire types of a profile into a stream. It buffers
// plain writers and tracks the first error; after an error all writes become
// no-ops. Result flushes and reports the outcome.
type Writer struct {
	w     sink
	count int64 // total bytes written
	err   error // first error encountered
	depth int
}

var _ io.Writer = (*Writer)(nil)

// NewWriterSize creates a Writer with a buffer of the given size. In-memory
// writers are used unbuffered. A size <= 0 selects DefaultBufferSize.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	if size <= 0 {
		size = DefaultBufferSize
	}

	switch bw := w.(type) {
	// Nested encoders share the outer buffer and leave flushing to it.
	case *Writer:
		return &Writer{w: bw.w, depth: bw.depth + 1}, nil

	// The caller owns this buffer and decides when it is flushed.
	case *bufio.Writer:
		if bw.Size() >= size {
			return &Writer{w: &bufioWriterAdapter{bw}, depth: 1}, nil
		}
		return nil, ErrAlreadyBuffered

	case *BytesWriter:
		return &Writer{w: bw}, nil
	case *bytes.Buffer:
		return &Writer{w: &bytesBufferWriterAdapter{bw}}, nil
	}

	return &Writer{w: &bufioWriterAdapter{bufio.NewWriterSize(w, size)}}, nil
}

// NewWriter creates a new Writer with the default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// Write implements the io.Writer interface.
func (w *Writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// setError records the first non-nil error, keeping the root cause of a
// failure chain.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes the buffer and returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush writes any buffered data to the underlying io.Writer. Only the
// outermost Writer flushes.
func (w *Writer) Flush() error {
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

// WriteFrom lets wt encode itself into the stream.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if w.err != nil {
		return
	}
	if wt == nil {
		w.setError(ErrWriteToNil)
		return
	}
	n, err := wt.WriteTo(w.w)
	w.count += n
	w.setError(err)
}

// WriteZeros writes n zero bytes. It is the write side of Reader.Skip for
// callers emitting padding outside a Fixed group; a profile's reserved ship
// slots travel inside the ship block instead.
func (w *Writer) WriteZeros(n int64) {
	for n > 0 && w.err == nil {
		chunk := min(n, BUFFER_SIZE)
		w.Write(empty[:chunk])
		n -= chunk
	}
}

// --- Primitive Write Operations ---

func (w *Writer) WriteInt32(v int32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	Order.PutUint32(buf[:], uint32(v))
	_, _ = w.Write(buf[:])
}

// WriteInt32s writes a run of integers with a single Write call.
func (w *Writer) WriteInt32s(values ...int32) {
	if w.err != nil || len(values) == 0 {
		return
	}
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		Order.PutUint32(buf[4*i:], uint32(v))
	}
	_, _ = w.Write(buf)
}

// WriteLength writes a string length or element count, failing with
// ErrStringTooLarge when n does not fit the field.
func (w *Writer) WriteLength(n int) {
	if w.err != nil {
		return
	}
	if !fitsInt32(n) {
		w.setError(fmt.Errorf("%w: %d", ErrStringTooLarge, n))
		return
	}
	w.WriteInt32(int32(n))
}

// WriteString writes the byte length of s followed by its raw bytes.
func (w *Writer) WriteString(s string) {
	w.WriteLength(len(s))
	if w.err != nil || s == "" {
		return
	}
	_, _ = io.WriteString(w, s)
}
