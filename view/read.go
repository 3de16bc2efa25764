package view

import (
	"strings"

	"github.com/wippyai/strview"
	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/errors"
)

// ReadBounded decodes exactly length bytes starting at offset.
// The span must lie inside the buffer.
func (v *View) ReadBounded(buf strview.Buffer, offset, length int, enc codec.Encoding) (Result, error) {
	c, err := v.lookup(errors.PhaseDecode, enc)
	if err != nil {
		return Result{}, err
	}
	size := buf.Len()
	if offset < 0 || offset > size {
		return Result{}, errors.OffsetOutOfRange(errors.PhaseDecode, offset, size)
	}
	if length < 0 || length > size-offset {
		return Result{}, errors.OutOfRange(errors.PhaseDecode, offset, length, size)
	}

	end := offset + length
	var sb strings.Builder
	sb.Grow(length)
	pos := offset
	for pos < end {
		ch := v.decodeChar(c, buf, pos, end-pos)
		sb.WriteRune(ch.Value)
		pos += ch.Size
	}
	return Result{Text: sb.String(), BytesConsumed: pos - offset}, nil
}

// ReadRemaining decodes every byte from offset to the end of the buffer.
func (v *View) ReadRemaining(buf strview.Buffer, offset int, enc codec.Encoding) (Result, error) {
	return v.ReadBounded(buf, offset, buf.Len()-offset, enc)
}

// ReadTerminated decodes from offset until the view's terminator or the end
// of the buffer. See ReadUntil.
func (v *View) ReadTerminated(buf strview.Buffer, offset int, enc codec.Encoding) (Result, error) {
	return v.ReadUntil(buf, offset, enc, v.terminator)
}

// ReadUntil decodes from offset until a character equal to term or the end
// of the buffer. The terminator is counted in BytesConsumed but not
// returned in Text.
func (v *View) ReadUntil(buf strview.Buffer, offset int, enc codec.Encoding, term byte) (Result, error) {
	c, err := v.lookup(errors.PhaseDecode, enc)
	if err != nil {
		return Result{}, err
	}
	size := buf.Len()
	if offset < 0 || offset > size {
		return Result{}, errors.OffsetOutOfRange(errors.PhaseDecode, offset, size)
	}

	var sb strings.Builder
	pos := offset
	for pos < size {
		ch := v.decodeChar(c, buf, pos, size-pos)
		pos += ch.Size
		if ch.Value == rune(term) {
			break
		}
		sb.WriteRune(ch.Value)
	}
	return Result{Text: sb.String(), BytesConsumed: pos - offset}, nil
}

// decodeChar decodes at pos and reports faults. Sizes outside [1, max]
// from misbehaving codecs become a single replaced byte.
func (v *View) decodeChar(c codec.Codec, buf strview.Buffer, pos, max int) codec.Char {
	ch := c.Decode(buf, pos, max)
	if ch.Size < 1 || ch.Size > max {
		ch = codec.Char{Value: codec.Replacement, Size: 1, Fault: codec.FaultBadCodec}
	}
	if ch.Fault != codec.FaultNone {
		v.notify(Event{
			Phase:    errors.PhaseDecode,
			Encoding: c.Name(),
			Offset:   pos,
			Byte:     buf.ByteAt(pos),
			Fault:    ch.Fault,
		})
	}
	return ch
}
