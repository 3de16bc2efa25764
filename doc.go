// Package strview converts between Go text and raw bytes held in fixed-size,
// randomly addressable byte buffers.
//
// # Architecture Overview
//
//	strview/          Root package with the Buffer interface
//	├── codec/        UTF-8 and ASCII transcoders, codec registry
//	├── view/         Bounded and terminated reads/writes over a Buffer
//	├── charset/      Single-byte legacy codecs from golang.org/x/text
//	├── memory/       wazero linear memory as a Buffer
//	├── metrics/      Prometheus fault counters
//	├── config/       YAML configuration
//	├── errors/       Structured error types
//	└── cmd/strview/  Command line tool
//
// # Quick Start
//
//	v := view.New()
//	buf := make(strview.Bytes, 16)
//
//	n, err := v.WriteTerminated(buf, 0, "héllo", codec.UTF8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := v.ReadTerminated(buf, 0, codec.UTF8)
//	fmt.Println(res.Text, res.BytesConsumed == n) // "héllo" true
//
// # Malformed Input
//
// Decoding never fails on bad data. Each malformed or truncated UTF-8
// sequence becomes one U+FFFD and decoding resumes at the next byte.
// Overlong forms, surrogates and values above U+10FFFF are rejected.
// Faults are reported to observers and to the debug log, never to the caller.
//
// Caller mistakes are errors: spans past the end of the buffer fail with
// out_of_bounds, unknown encodings fail with unknown_encoding.
//
// # Thread Safety
//
// Codecs are stateless. Registry lookups read an immutable snapshot and
// registration swaps it, so a View may be shared between goroutines working
// on independent buffers.
package strview
