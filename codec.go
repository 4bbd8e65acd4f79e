package ftlprof

import (
	"encoding"
	"io"
)

// Sizer is implemented by types that know their encoded size.
type Sizer interface {
	// Size returns the number of bytes the value occupies on the wire.
	Size() int
}

// Marshaler encodes a value into the profile wire format.
type Marshaler interface {
	encoding.BinaryMarshaler // MarshalBinary() ([]byte, error)
	io.WriterTo              // WriteTo(w io.Writer) (int64, error)

	// MarshalTo encodes into a caller-provided buffer and returns
	// io.ErrShortWrite if it is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler decodes a value from the profile wire format.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler // UnmarshalBinary(data []byte) error
	io.ReaderFrom              // ReadFrom(r io.Reader) (int64, error)
}

// Codec is a complete, self-sizing encoder/decoder. Records, field groups,
// collections and the Profile itself all implement it.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
