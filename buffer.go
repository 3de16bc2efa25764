package strview

// Buffer is a fixed-length, randomly addressable sequence of bytes.
// Callers keep offsets within [0, Len()); implementations may panic otherwise.
type Buffer interface {
	Len() int
	ByteAt(off int) byte
	SetByteAt(off int, v byte)
}

// Bytes adapts a byte slice to Buffer. The slice length is the buffer length.
type Bytes []byte

// Len returns the buffer length.
func (b Bytes) Len() int { return len(b) }

// ByteAt returns the byte at off.
func (b Bytes) ByteAt(off int) byte { return b[off] }

// SetByteAt stores v at off.
func (b Bytes) SetByteAt(off int, v byte) { b[off] = v }
