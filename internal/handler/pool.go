package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical card list response.
const initialBufferSize = 4096

// bufferPool is a pool of bytes.Buffer shared by JSON responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
