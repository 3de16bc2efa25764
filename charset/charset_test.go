package charset

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/strview"
	"github.com/wippyai/strview/codec"
	sverrors "github.com/wippyai/strview/errors"
	"github.com/wippyai/strview/view"
)

func TestCodec_ISO8859_15(t *testing.T) {
	c := New("ISO-8859-15", charmap.ISO8859_15)

	got := codec.Encode(c, []rune("€uro ½"))
	// ½ exists in Latin-1 but not in Latin-9.
	want := []byte{0xA4, 'u', 'r', 'o', ' ', '?'}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}

	ch := c.Decode(strview.Bytes{0xA4}, 0, 1)
	if ch.Value != '€' || ch.Size != 1 || ch.Fault != codec.FaultNone {
		t.Errorf("Decode(0xA4) = %+v", ch)
	}
}

func TestCodec_UnmappedByte(t *testing.T) {
	c := New("ISO-8859-3", charmap.ISO8859_3)
	// 0xA5 is undefined in ISO-8859-3.
	ch := c.Decode(strview.Bytes{0xA5}, 0, 1)
	if ch.Value != codec.Replacement || ch.Fault != codec.FaultUnmapped {
		t.Errorf("Decode(0xA5) = %+v", ch)
	}
	ch = c.Decode(strview.Bytes{0xA6}, 0, 1)
	if ch.Value != 'Ĥ' || ch.Fault != codec.FaultNone {
		t.Errorf("Decode(0xA6) = %+v", ch)
	}
}

func TestLookup(t *testing.T) {
	c, err := Lookup("ISO-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "ISO-8859-1" {
		t.Errorf("Name() = %q", c.Name())
	}
	if got := codec.Encode(c, []rune("é")); !bytes.Equal(got, []byte{0xE9}) {
		t.Errorf("Encode(é) = % X", got)
	}

	if _, err := Lookup("no-such-charset"); !errors.Is(err, sverrors.ErrUnknownEncoding) {
		t.Errorf("unknown: err = %v", err)
	}
	if _, err := Lookup("Shift_JIS"); !sverrors.IsKind(err, sverrors.KindUnsupported) {
		t.Errorf("multi-byte: err = %v", err)
	}
}

func TestRegister(t *testing.T) {
	reg := codec.NewRegistry()
	if err := Register(reg, "ISO-8859-15", "windows-1252"); err != nil {
		t.Fatal(err)
	}

	v := view.New(view.WithRegistry(reg))
	buf := make(strview.Bytes, 8)
	n, err := v.WriteTerminated(buf, 0, "€5", "windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || !bytes.Equal(buf[:3], []byte{0x80, '5', 0}) {
		t.Errorf("n=%d buf=% X", n, buf)
	}
	res, err := v.ReadTerminated(buf, 0, "windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "€5" || res.BytesConsumed != 3 {
		t.Errorf("got %+v", res)
	}

	if err := Register(reg, "windows-1252", "UTF-8"); !sverrors.IsKind(err, sverrors.KindRegistration) {
		t.Errorf("err = %v, want registration", err)
	}
}
