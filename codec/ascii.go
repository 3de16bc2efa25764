package codec

import "github.com/wippyai/strview"

// ASCIICodec maps bytes to runes one to one. Runes above 0xFF encode as '?'.
type ASCIICodec struct{}

var _ Codec = ASCIICodec{}

// Name returns ASCII.
func (ASCIICodec) Name() Encoding { return ASCII }

// Encode appends r as a single byte.
func (ASCIICodec) Encode(dst []byte, r rune) ([]byte, Fault) {
	if r < 0 || r > 0xFF {
		return append(dst, '?'), FaultUnencodable
	}
	return append(dst, byte(r)), FaultNone
}

// Decode returns the byte at pos as a rune.
func (ASCIICodec) Decode(buf strview.Buffer, pos, _ int) Char {
	return Char{Value: rune(buf.ByteAt(pos)), Size: 1}
}
