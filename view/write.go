package view

import (
	"github.com/wippyai/strview"
	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/errors"
)

// Encode returns the full encoding of text.
func (v *View) Encode(text string, enc codec.Encoding) ([]byte, error) {
	c, err := v.lookup(errors.PhaseEncode, enc)
	if err != nil {
		return nil, err
	}
	return v.encodeString(c, text), nil
}

// EncodeRunes returns the full encoding of text. Unlike Encode it accepts
// runes a Go string cannot hold, such as values above U+10FFFF.
func (v *View) EncodeRunes(text []rune, enc codec.Encoding) ([]byte, error) {
	c, err := v.lookup(errors.PhaseEncode, enc)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text))
	for i, r := range text {
		out = v.encodeChar(c, out, i, r)
	}
	return out, nil
}

// ByteLength returns the number of bytes text encodes to, without writing.
func (v *View) ByteLength(text string, enc codec.Encoding) (int, error) {
	c, err := v.lookup(errors.PhaseEncode, enc)
	if err != nil {
		return 0, err
	}
	var scratch [8]byte
	n := 0
	for _, r := range text {
		b, _ := c.Encode(scratch[:0], r)
		n += len(b)
	}
	return n, nil
}

// WriteBounded encodes text and copies as much of it as fits between offset
// and the end of the buffer. It returns the number of bytes written, which
// is less than the encoded length when the buffer is too small.
func (v *View) WriteBounded(buf strview.Buffer, offset int, text string, enc codec.Encoding) (int, error) {
	c, err := v.lookup(errors.PhaseEncode, enc)
	if err != nil {
		return 0, err
	}
	size := buf.Len()
	if offset < 0 || offset > size {
		return 0, errors.OffsetOutOfRange(errors.PhaseEncode, offset, size)
	}
	return store(buf, offset, v.encodeString(c, text)), nil
}

// WriteTerminated writes text followed by the view's terminator and returns
// the byte count including the terminator. When the text reaches the end of
// the buffer its last byte is overwritten by the terminator.
func (v *View) WriteTerminated(buf strview.Buffer, offset int, text string, enc codec.Encoding) (int, error) {
	c, err := v.lookup(errors.PhaseEncode, enc)
	if err != nil {
		return 0, err
	}
	size := buf.Len()
	if offset < 0 || offset >= size {
		return 0, errors.OffsetOutOfRange(errors.PhaseEncode, offset, size)
	}
	n := store(buf, offset, v.encodeString(c, text))
	if offset+n >= size {
		n--
	}
	buf.SetByteAt(offset+n, v.terminator)
	return n + 1, nil
}

func store(buf strview.Buffer, offset int, data []byte) int {
	if b, ok := buf.(strview.Bytes); ok {
		return copy(b[offset:], data)
	}
	n := min(len(data), buf.Len()-offset)
	for i := range n {
		buf.SetByteAt(offset+i, data[i])
	}
	return n
}

func (v *View) encodeString(c codec.Codec, text string) []byte {
	out := make([]byte, 0, len(text))
	i := 0
	for _, r := range text {
		out = v.encodeChar(c, out, i, r)
		i++
	}
	return out
}

func (v *View) encodeChar(c codec.Codec, dst []byte, index int, r rune) []byte {
	dst, fault := c.Encode(dst, r)
	if fault != codec.FaultNone {
		v.notify(Event{
			Phase:    errors.PhaseEncode,
			Encoding: c.Name(),
			Offset:   index,
			Rune:     r,
			Fault:    fault,
		})
	}
	return dst
}
