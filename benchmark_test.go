package ftlprof

import (
	"bytes"
	"testing"
)

func BenchmarkProfileMarshalBinary(b *testing.B) {
	p := sampleProfile()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.MarshalBinary()
	}
}

func BenchmarkProfileMarshalTo(b *testing.B) {
	p := sampleProfile()
	buf := make([]byte, p.Size())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.MarshalTo(buf)
	}
}

func BenchmarkDecode(b *testing.B) {
	data, _ := sampleProfile().MarshalBinary()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(bytes.NewReader(data))
	}
}

// Decode through the bufio path, as with a file.
func BenchmarkDecodeStream(b *testing.B) {
	data, _ := sampleProfile().MarshalBinary()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(struct{ *bytes.Reader }{bytes.NewReader(data)})
	}
}

func BenchmarkFixedStatisticsReadFrom(b *testing.B) {
	c := &Fixed[Statistics]{Payload: Statistics{Games: 23, Victories: 2}}
	data, _ := c.MarshalBinary()
	var c2 Fixed[Statistics]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c2.ReadFrom(bytes.NewReader(data))
	}
}
