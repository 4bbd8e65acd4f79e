package ftlprof

import (
	"bytes"
	"sync"
)

// bytesBufPool holds scratch buffers for strings whose declared length is
// larger than one read chunk.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, BUFFER_SIZE))
	},
}
