package ftlprof

import (
	"bufio"
	"bytes"
	"io"
)

// source is what a Reader consumes: a stream it can read from and move
// forward in. Size reports the buffer (or in-memory data) size.
type source interface {
	io.Reader
	io.Seeker
	Size() int
}

// sink is what a Writer produces into.
type sink interface {
	io.Writer
	Size() int
	Flush() error
}

type (
	bytesReaderAdapter       struct{ *bytes.Reader }
	bytesBufferWriterAdapter struct{ *bytes.Buffer }
	bytesBufferReaderAdapter struct {
		*bytes.Buffer
		pos int64
	}
	bufioWriterAdapter struct{ *bufio.Writer }
	bufioReaderAdapter struct {
		*bufio.Reader
		seeker io.ReadSeeker
		pos    int64
	}
)

func (w *bytesBufferWriterAdapter) Flush() error { return nil }
func (w *bytesBufferWriterAdapter) Size() int    { return w.Available() }
func (r *bytesBufferReaderAdapter) Size() int    { return r.Len() }
func (r *bytesReaderAdapter) Size() int          { return int(r.Reader.Size()) }

// Read reads from the underlying buffer and advances pos.
func (r *bytesBufferReaderAdapter) Read(p []byte) (n int, err error) {
	n, err = r.Buffer.Read(p)
	r.pos += int64(n)
	return n, err
}

// Seek moves forward by dropping bytes from the buffer. A bytes.Buffer keeps
// no history, so backward seeks and io.SeekEnd are rejected.
func (r *bytesBufferReaderAdapter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = r.pos + offset
	default:
		return r.pos, ErrInvalidWhence
	}

	skip := target - r.pos
	if skip < 0 {
		return r.pos, ErrUnsupportedNegativeSeek
	}
	if skip > int64(r.Buffer.Len()) {
		skip = int64(r.Buffer.Len())
	}
	r.Buffer.Next(int(skip))
	r.pos += skip
	return r.pos, nil
}

// Read reads data into p and advances pos.
func (b *bufioReaderAdapter) Read(p []byte) (n int, err error) {
	n, err = b.Reader.Read(p)
	b.pos += int64(n)
	return n, err
}

// Size returns the size of the bufio buffer.
func (b *bufioReaderAdapter) Size() int {
	return b.Reader.Size()
}

// Seek accounts for the bytes bufio already pulled from the stream. Targets
// inside the buffer are served by Discard; others move the stream relative to
// where bufio left it and reset the buffer. Our own buffers sit on a
// ForwardSeeker, so a non-seekable stream only moves forward. A caller's
// bufio.Reader has no seeker and is read through.
func (b *bufioReaderAdapter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = b.pos + offset
	default:
		return b.pos, ErrInvalidWhence
	}
	if target < 0 {
		return b.pos, ErrInvalidSeek
	}

	buffered := int64(b.Reader.Buffered())
	if b.pos <= target && target < b.pos+buffered {
		n, err := b.Reader.Discard(int(target - b.pos))
		b.pos += int64(n)
		return b.pos, err
	}

	if b.seeker == nil {
		if target < b.pos {
			return b.pos, ErrUnsupportedNegativeSeek
		}
		_, err := Discard(b, target-b.pos)
		return b.pos, err
	}

	if _, err := b.seeker.Seek(target-(b.pos+buffered), io.SeekCurrent); err != nil {
		return b.pos, err
	}
	b.Reader.Reset(b.seeker)
	b.pos = target
	return b.pos, nil
}
