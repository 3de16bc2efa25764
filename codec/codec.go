package codec

import (
	"github.com/wippyai/strview"
	"github.com/wippyai/strview/errors"
)

// Encoding identifies a codec in a Registry.
type Encoding string

const (
	UTF8  Encoding = "UTF-8"
	ASCII Encoding = "ASCII"

	// Default is used wherever an empty Encoding is given.
	Default = UTF8
)

// Replacement is substituted for undecodable input and unencodable runes.
const Replacement rune = '\uFFFD'

// MaxRune is the largest valid Unicode code point.
const MaxRune rune = 0x10FFFF

// Codec converts single characters between runes and bytes.
// Implementations must be stateless and safe for concurrent use.
type Codec interface {
	// Name returns the encoding the codec is registered under.
	Name() Encoding

	// Encode appends the encoding of r to dst.
	Encode(dst []byte, r rune) ([]byte, Fault)

	// Decode decodes one character starting at buf[pos], reading at most
	// max bytes. Callers guarantee max >= 1 and pos+max <= buf.Len().
	// The returned Size is in [1, max].
	Decode(buf strview.Buffer, pos, max int) Char
}

// Char is the result of decoding one character.
type Char struct {
	Value rune
	Size  int
	Fault Fault
}

func invalid(f Fault) Char {
	return Char{Value: Replacement, Size: 1, Fault: f}
}

// Fault describes why a character was replaced.
type Fault uint8

const (
	FaultNone Fault = iota
	FaultLoneContinuation
	FaultInvalidLead
	FaultTruncated
	FaultBadContinuation
	FaultOverlong
	FaultOutOfRange
	FaultSurrogate
	FaultUnmapped
	FaultUnencodable
	FaultBadCodec
)

var faultNames = [...]string{
	FaultNone:             "none",
	FaultLoneContinuation: "lone_continuation",
	FaultInvalidLead:      "invalid_lead",
	FaultTruncated:        "truncated",
	FaultBadContinuation:  "bad_continuation",
	FaultOverlong:         "overlong",
	FaultOutOfRange:       "out_of_range",
	FaultSurrogate:        "surrogate",
	FaultUnmapped:         "unmapped",
	FaultUnencodable:      "unencodable",
	FaultBadCodec:         "bad_codec",
}

var faultDetails = [...]string{
	FaultNone:             "",
	FaultLoneContinuation: "continuation byte at start of character",
	FaultInvalidLead:      "byte cannot start a sequence",
	FaultTruncated:        "sequence runs past end of span",
	FaultBadContinuation:  "non-continuation byte inside sequence",
	FaultOverlong:         "overlong encoding",
	FaultOutOfRange:       "code point above U+10FFFF",
	FaultSurrogate:        "surrogate code point",
	FaultUnmapped:         "byte has no mapping",
	FaultUnencodable:      "code point not representable",
	FaultBadCodec:         "codec returned invalid size",
}

// String returns the snake_case name of the fault.
func (f Fault) String() string {
	if int(f) < len(faultNames) {
		return faultNames[f]
	}
	return "unknown"
}

// Detail returns a human-readable description.
func (f Fault) Detail() string {
	if int(f) < len(faultDetails) {
		return faultDetails[f]
	}
	return "unknown fault"
}

// Kind maps the fault onto the error taxonomy.
func (f Fault) Kind() errors.Kind {
	if f == FaultTruncated {
		return errors.KindTruncatedInput
	}
	return errors.KindMalformedSequence
}

// Encode encodes text with c, ignoring faults.
func Encode(c Codec, text []rune) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		out, _ = c.Encode(out, r)
	}
	return out
}
