// Package codec implements the character transcoders behind strview.
//
// A Codec works one character at a time in both directions:
//
//	dst, fault := c.Encode(dst, r)   // append the encoding of r
//	ch := c.Decode(buf, pos, max)    // decode at buf[pos], at most max bytes
//
// Both directions are total. Encode substitutes a replacement for runes the
// encoding cannot represent; Decode substitutes U+FFFD for malformed input.
// The Fault returned alongside says what went wrong, FaultNone otherwise.
//
// # UTF-8 Recovery
//
// Every malformed UTF-8 sequence decodes as U+FFFD with Size 1, so the caller
// resumes at the byte after the offending lead byte:
//
//	41 42 43 20 F0 82 82 AC 44 45
//	A  B  C  sp R  R  R  R  D  E     (R = U+FFFD)
//
// F0 82 is the start of an overlong form; 82, 82 and AC are continuation
// bytes with no lead. One replacement per rejected byte, never more.
//
// # Registry
//
// A Registry maps Encoding names to codecs. UTF-8 and ASCII are registered
// by NewRegistry. Lookups read an immutable snapshot without locking;
// registration copies the snapshot and swaps it in, last write wins.
package codec
