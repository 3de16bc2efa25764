// Package charset provides single-byte legacy codecs such as ISO-8859-1 and
// windows-1252, built on the tables in golang.org/x/text/encoding/charmap.
//
//	reg := codec.NewRegistry()
//	if err := charset.Register(reg, "ISO-8859-15", "windows-1252"); err != nil {
//	    return err
//	}
//	v := view.New(view.WithRegistry(reg))
//
// Names are resolved through the IANA index and registered under the name
// given by the caller. Multi-byte encodings are rejected.
package charset
