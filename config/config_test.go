package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/strview"
	"github.com/wippyai/strview/errors"
	"github.com/wippyai/strview/view"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
encoding: windows-1252
terminator: 36
charsets: [windows-1252, ISO-8859-15]
log_level: debug
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Encoding != "windows-1252" || c.Terminator != 36 || c.LogLevel != "debug" {
		t.Errorf("got %+v", c)
	}
	if len(c.Charsets) != 2 {
		t.Errorf("Charsets = %v", c.Charsets)
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.DefaultEncoding() != "UTF-8" || c.Terminator != 0 || c.LogLevel != "info" {
		t.Errorf("got %+v", c)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		kind errors.Kind
	}{
		{"unknown key", "encodng: UTF-8\n", errors.KindInvalidData},
		{"bad yaml", "encoding: [\n", errors.KindInvalidData},
		{"terminator too large", "terminator: 256\n", errors.KindInvalidInput},
		{"negative terminator", "terminator: -1\n", errors.KindInvalidInput},
		{"bad log level", "log_level: loud\n", errors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("err = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strview.yaml")
	if err := os.WriteFile(path, []byte("encoding: ASCII\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.DefaultEncoding() != "ASCII" {
		t.Errorf("encoding = %q", c.Encoding)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewView(t *testing.T) {
	c, err := Parse([]byte("encoding: ISO-8859-15\ncharsets: [ISO-8859-15]\nterminator: 36\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := c.NewView(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Terminator() != '$' {
		t.Errorf("Terminator() = %q", v.Terminator())
	}

	buf := make(strview.Bytes, 4)
	n, err := v.WriteTerminated(buf, 0, "€1", c.DefaultEncoding())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || string(buf[:3]) != "\xA41$" {
		t.Errorf("n=%d buf=% X", n, buf)
	}
}

func TestNewView_UnknownEncoding(t *testing.T) {
	c := Default()
	c.Encoding = "ISO-8859-15"
	if _, err := c.NewView(nil); !errors.IsKind(err, errors.KindUnknownEncoding) {
		t.Errorf("err = %v, want unknown_encoding", err)
	}

	c.Encoding = "UTF-8"
	c.Charsets = []string{"no-such-charset"}
	if _, err := c.NewView(nil); !errors.IsKind(err, errors.KindRegistration) {
		t.Errorf("err = %v, want registration", err)
	}
}

func TestNewView_ExtraOptions(t *testing.T) {
	v, err := Default().NewView(nil, view.WithTerminator('\n'))
	if err != nil {
		t.Fatal(err)
	}
	if v.Terminator() != '\n' {
		t.Errorf("extra option not applied, terminator = %q", v.Terminator())
	}
}

func TestLogger(t *testing.T) {
	c := Default()
	c.LogLevel = "debug"
	l, err := c.Logger()
	if err != nil {
		t.Fatal(err)
	}
	if !l.Core().Enabled(-1) {
		t.Error("debug level not enabled")
	}
}
