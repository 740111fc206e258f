package packets

import "sync"

// defaultPoolSize is a fixed header's worst case (1 type/flags byte plus a
// 4-byte VarInt remaining length, see appendBytes) plus the largest
// remaining_length a 2-byte VarInt can hold (16383, the varIntSize boundary
// below the 3-byte tier). That covers every PINGREQ/PINGRESP, ack-family,
// SUBACK/UNSUBACK packet and the overwhelming majority of CONNECT/PUBLISH
// packets this codec actually encodes. WriteTo always draws a pooled
// buffer; a packet whose encoding outgrows it (a remaining_length needing
// a 3- or 4-byte VarInt) makes Append allocate a larger slice, and the
// pooled buffer itself still goes back to the pool.
const defaultPoolSize = 5 + 16383

var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultPoolSize)
		return &buf
	},
}

// getBuffer returns a pooled buffer, or a freshly allocated one if size
// exceeds defaultPoolSize.
func getBuffer(size int) *[]byte {
	if size > defaultPoolSize {
		buf := make([]byte, size)
		return &buf
	}
	return bufferPool.Get().(*[]byte)
}

// putBuffer returns buf to the pool. Buffers that were allocated outside
// the pool (oversized) are simply dropped.
func putBuffer(buf *[]byte) {
	if cap(*buf) != defaultPoolSize {
		return
	}
	bufferPool.Put(buf)
}
