// Package view reads and writes strings in fixed-size byte buffers.
//
// A View resolves an encoding name to a codec and loops it over a span of a
// strview.Buffer:
//
//	ReadBounded      exactly n bytes, span must fit the buffer
//	ReadRemaining    offset to end of buffer
//	ReadTerminated   up to the terminator (default 0) or end of buffer
//	WriteBounded     as many encoded bytes as fit, silently truncated
//	WriteTerminated  bounded write plus terminator; the last content byte
//	                 is sacrificed when the buffer is full
//	ByteLength       encoded size without touching a buffer
//
// # Errors
//
// Reads never fail on bad data; malformed bytes decode as U+FFFD and are
// reported to observers and to the debug log. Calls fail only for spans
// outside the buffer (errors.KindOutOfBounds) and unregistered encodings
// (errors.KindUnknownEncoding).
//
// # Observers
//
// Register observers to collect diagnostics for replaced characters:
//
//	v := view.New(view.WithObserver(view.ObserverFunc(func(e view.Event) {
//	    log.Println(e.Err())
//	})))
package view
