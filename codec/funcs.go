package codec

import "github.com/wippyai/strview"

// DecodeFunc decodes one character; see Codec.Decode.
type DecodeFunc func(buf strview.Buffer, pos, max int) Char

// EncodeFunc appends the encoding of one rune; see Codec.Encode.
type EncodeFunc func(dst []byte, r rune) ([]byte, Fault)

// Funcs builds a Codec from a pair of functions.
func Funcs(name Encoding, dec DecodeFunc, enc EncodeFunc) Codec {
	return funcCodec{name: name, dec: dec, enc: enc}
}

type funcCodec struct {
	dec  DecodeFunc
	enc  EncodeFunc
	name Encoding
}

func (c funcCodec) Name() Encoding { return c.name }

func (c funcCodec) Encode(dst []byte, r rune) ([]byte, Fault) {
	return c.enc(dst, r)
}

func (c funcCodec) Decode(buf strview.Buffer, pos, max int) Char {
	return c.dec(buf, pos, max)
}
