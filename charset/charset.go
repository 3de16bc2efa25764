package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/wippyai/strview"
	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/errors"
)

// Codec is a codec.Codec backed by a charmap table.
type Codec struct {
	cm   *charmap.Charmap
	name codec.Encoding
}

var _ codec.Codec = (*Codec)(nil)

// New wraps cm as a codec registered under name.
func New(name codec.Encoding, cm *charmap.Charmap) *Codec {
	return &Codec{name: name, cm: cm}
}

// Name returns the encoding name.
func (c *Codec) Name() codec.Encoding { return c.name }

// Encode appends the single byte for r, or '?' when the table has none.
func (c *Codec) Encode(dst []byte, r rune) ([]byte, codec.Fault) {
	b, ok := c.cm.EncodeRune(r)
	if !ok {
		return append(dst, '?'), codec.FaultUnencodable
	}
	return append(dst, b), codec.FaultNone
}

// Decode maps the byte at pos through the table. Bytes the table leaves
// undefined decode as U+FFFD.
func (c *Codec) Decode(buf strview.Buffer, pos, _ int) codec.Char {
	r := c.cm.DecodeByte(buf.ByteAt(pos))
	if r == codec.Replacement {
		return codec.Char{Value: r, Size: 1, Fault: codec.FaultUnmapped}
	}
	return codec.Char{Value: r, Size: 1}
}

// Lookup resolves an IANA charset name to a codec registered under name.
func Lookup(name string) (*Codec, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, errors.UnknownEncoding(errors.PhaseRegistry, name)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseRegistry, name+" is not a single-byte charset")
	}
	return New(codec.Encoding(name), cm), nil
}

// Register resolves each name with Lookup and installs it in reg.
// It stops at the first failure.
func Register(reg *codec.Registry, names ...string) error {
	for _, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return errors.Registration(name, err)
		}
		if err := reg.RegisterCodec(c); err != nil {
			return err
		}
	}
	return nil
}
