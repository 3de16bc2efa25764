package view

import (
	"go.uber.org/zap"

	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/errors"
)

// Event describes one replaced character.
type Event struct {
	Phase    errors.Phase
	Encoding codec.Encoding
	// Offset is the buffer offset of the rejected byte when decoding. When
	// encoding it is the rune index into the source text, counting runes
	// for both string and []rune input.
	Offset int
	// Rune is the unencodable rune (encode only).
	Rune rune
	// Byte is the rejected lead byte (decode only).
	Byte  byte
	Fault codec.Fault
}

// Err returns the event as a structured error.
func (e Event) Err() *errors.Error {
	var err *errors.Error
	if e.Fault.Kind() == errors.KindTruncatedInput {
		err = errors.Truncated(e.Phase, string(e.Encoding), e.Offset, e.Fault.Detail())
	} else {
		err = errors.Malformed(e.Phase, string(e.Encoding), e.Offset, e.Fault.Detail())
	}
	if e.Phase == errors.PhaseEncode {
		err.Value = e.Rune
	} else {
		err.Value = e.Byte
	}
	return err
}

// Observer receives an Event for every character replaced during a read or
// write. Observers are called synchronously on the calling goroutine.
type Observer interface {
	OnFault(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnFault calls f(e).
func (f ObserverFunc) OnFault(e Event) { f(e) }

func (v *View) notify(e Event) {
	log := v.logger()
	if ce := log.Check(zap.DebugLevel, "character replaced"); ce != nil {
		fields := []zap.Field{
			zap.String("phase", string(e.Phase)),
			zap.String("encoding", string(e.Encoding)),
			zap.Int("offset", e.Offset),
			zap.Stringer("fault", e.Fault),
		}
		if e.Phase == errors.PhaseEncode {
			fields = append(fields, zap.Int32("rune", e.Rune))
		} else {
			fields = append(fields, zap.Uint8("byte", e.Byte))
		}
		ce.Write(fields...)
	}
	for _, o := range v.observers {
		o.OnFault(e)
	}
}
