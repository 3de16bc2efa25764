package codec

import (
	"math/bits"

	"github.com/wippyai/strview"
)

const (
	max2 = 0x7FF
	max3 = 0xFFFF
	max4 = 0x1FFFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// minPartial is the smallest value an n-byte sequence may hold after its
// first continuation byte. Anything lower fits in fewer bytes.
var minPartial = [5]rune{
	2: 0x80,
	3: 0x800 >> 6,
	4: 0x10000 >> 12,
}

// UTF8Codec is the UTF-8 transcoder.
type UTF8Codec struct{}

var _ Codec = UTF8Codec{}

// Name returns UTF8.
func (UTF8Codec) Name() Encoding { return UTF8 }

// Encode appends the 1-4 byte form of r. Runes above U+1FFFFF, negative
// runes and surrogates are written as U+FFFD.
func (UTF8Codec) Encode(dst []byte, r rune) ([]byte, Fault) {
	if r >= 0 && r < 0x80 {
		return append(dst, byte(r)), FaultNone
	}

	var n int
	switch {
	case r < 0 || r > max4:
		return appendUTF8(dst, Replacement, 3), FaultUnencodable
	case r >= surrogateMin && r <= surrogateMax:
		return appendUTF8(dst, Replacement, 3), FaultSurrogate
	case r <= max2:
		n = 2
	case r <= max3:
		n = 3
	default:
		n = 4
	}
	return appendUTF8(dst, r, n), FaultNone
}

func appendUTF8(dst []byte, r rune, n int) []byte {
	shift := 6 * (n - 1)
	dst = append(dst, byte(0xFF<<(8-n))|byte(r>>shift))
	for shift > 0 {
		shift -= 6
		dst = append(dst, 0x80|byte(r>>shift)&0x3F)
	}
	return dst
}

// Decode decodes one UTF-8 character. Malformed input yields U+FFFD with
// Size 1 and a Fault naming the defect.
func (UTF8Codec) Decode(buf strview.Buffer, pos, max int) Char {
	lead := buf.ByteAt(pos)
	if lead < 0x80 {
		return Char{Value: rune(lead), Size: 1}
	}

	n := bits.LeadingZeros8(^lead)
	switch {
	case n == 1:
		return invalid(FaultLoneContinuation)
	case n > 4:
		return invalid(FaultInvalidLead)
	case n > max:
		return invalid(FaultTruncated)
	}

	v := rune(lead & (0xFF >> (n + 1)))
	for i := 1; i < n; i++ {
		b := buf.ByteAt(pos + i)
		if b&0xC0 != 0x80 {
			return invalid(FaultBadContinuation)
		}
		v = v<<6 | rune(b&0x3F)
		if i == 1 && v < minPartial[n] {
			return invalid(FaultOverlong)
		}
	}

	switch {
	case v > MaxRune:
		return invalid(FaultOutOfRange)
	case v >= surrogateMin && v <= surrogateMax:
		return invalid(FaultSurrogate)
	}
	return Char{Value: v, Size: n}
}
