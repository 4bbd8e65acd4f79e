package ftlprof

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache keeps binary.Size off the hot path; it reflects over the payload
// on every call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed is the codec for a group of scalars that always travel together,
// such as the nine ship flags or the ten statistics counters. The Payload's
// field order is the wire order.
//
// The whole group is read into one buffer before any field is set, so a
// short stream leaves Payload untouched.
//
// Constraint: Payload must contain only fixed-size fields (no slices,
// maps or strings), otherwise binary.Size fails.
type Fixed[Payload any] struct {
	Payload Payload
}

var _ Codec = (*Fixed[struct{}])(nil)

// Size returns the encoded size of Payload.
func (c *Fixed[Payload]) Size() int {
	bodyType := reflect.TypeOf((*Payload)(nil)).Elem()
	if size, ok := sizeCache.Load(bodyType); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	sizeCache.Store(bodyType, size)
	return size
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, c.Size())
	if _, err := binary.Encode(buf, Order, &c.Payload); err != nil {
		return nil, io.ErrShortWrite
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Extra bytes after
// the group must be zero.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	var payload Payload
	n, err := binary.Decode(data, Order, &payload)
	if err != nil {
		// binary.Decode only fails here when data is too short.
		return truncated(io.ErrUnexpectedEOF)
	}
	if len(data) > n {
		if err := CheckBufferNotZeros(data[n:]); err != nil {
			return err
		}
	}
	c.Payload = payload
	return nil
}

// ReadFrom implements io.ReaderFrom.
func (c *Fixed[Payload]) ReadFrom(r io.Reader) (int64, error) {
	var payload Payload
	if err := binary.Read(r, Order, &payload); err != nil {
		return 0, truncated(err)
	}
	c.Payload = payload
	return int64(c.Size()), nil
}

// WriteTo implements io.WriterTo.
func (c *Fixed[Payload]) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// MarshalTo encodes into p without allocating.
func (c *Fixed[Payload]) MarshalTo(p []byte) (int, error) {
	n, err := binary.Encode(p, Order, &c.Payload)
	if err != nil {
		return n, io.ErrShortWrite
	}
	return n, nil
}
