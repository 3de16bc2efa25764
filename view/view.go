package view

import (
	"go.uber.org/zap"

	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/errors"
)

// View reads and writes strings in byte buffers through a codec registry.
// A View is immutable after New and safe for concurrent use.
type View struct {
	registry   *codec.Registry
	log        *zap.Logger
	observers  []Observer
	terminator byte
}

// Option configures a View.
type Option func(*View)

// WithRegistry sets the codec registry. Defaults to codec.DefaultRegistry().
func WithRegistry(r *codec.Registry) Option {
	return func(v *View) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithTerminator sets the byte ending terminated reads and writes. Defaults to 0.
func WithTerminator(b byte) Option {
	return func(v *View) {
		v.terminator = b
	}
}

// WithLogger sets the logger used for fault diagnostics instead of the
// package logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *View) {
		v.log = l
	}
}

// WithObserver adds observers notified of every replaced character.
func WithObserver(obs ...Observer) Option {
	return func(v *View) {
		for _, o := range obs {
			if o != nil {
				v.observers = append(v.observers, o)
			}
		}
	}
}

// New creates a View.
func New(opts ...Option) *View {
	v := &View{registry: codec.DefaultRegistry()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result is the outcome of a read.
type Result struct {
	Text string
	// BytesConsumed counts every byte advanced over, including a
	// terminator and any malformed bytes.
	BytesConsumed int
}

// Terminator returns the configured terminator byte.
func (v *View) Terminator() byte { return v.terminator }

// Registry returns the registry the view resolves encodings in.
func (v *View) Registry() *codec.Registry { return v.registry }

// Register installs a custom codec in the view's registry.
func (v *View) Register(name codec.Encoding, dec codec.DecodeFunc, enc codec.EncodeFunc) error {
	return v.registry.Register(name, dec, enc)
}

// Encodings lists the encodings the view can use.
func (v *View) Encodings() []codec.Encoding {
	return v.registry.Names()
}

func (v *View) logger() *zap.Logger {
	if v.log != nil {
		return v.log
	}
	return Logger()
}

func (v *View) lookup(phase errors.Phase, enc codec.Encoding) (codec.Codec, error) {
	c, err := v.registry.Lookup(enc)
	if err != nil {
		e := errors.UnknownEncoding(phase, string(enc))
		e.Cause = err
		return nil, e
	}
	return c, nil
}
