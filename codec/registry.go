package codec

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/wippyai/strview/errors"
)

// Registry maps encoding names to codecs.
type Registry struct {
	codecs atomic.Pointer[map[Encoding]Codec]
	mu     sync.Mutex
}

// NewRegistry returns a registry holding the UTF-8 and ASCII codecs.
func NewRegistry() *Registry {
	r := &Registry{}
	m := map[Encoding]Codec{
		UTF8:  UTF8Codec{},
		ASCII: ASCIICodec{},
	}
	r.codecs.Store(&m)
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register installs a codec built from dec and enc under name,
// replacing any previous registration.
func (r *Registry) Register(name Encoding, dec DecodeFunc, enc EncodeFunc) error {
	if dec == nil {
		return errors.Registration(string(name), errors.InvalidInput(errors.PhaseRegistry, "nil decoder"))
	}
	if enc == nil {
		return errors.Registration(string(name), errors.InvalidInput(errors.PhaseRegistry, "nil encoder"))
	}
	return r.RegisterCodec(Funcs(name, dec, enc))
}

// RegisterCodec installs c under c.Name(), replacing any previous registration.
func (r *Registry) RegisterCodec(c Codec) error {
	if c == nil {
		return errors.Registration("", errors.InvalidInput(errors.PhaseRegistry, "nil codec"))
	}
	name := c.Name()
	if name == "" {
		return errors.Registration("", errors.InvalidInput(errors.PhaseRegistry, "encoding name cannot be empty"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.codecs.Load()
	next := make(map[Encoding]Codec, len(old)+1)
	maps.Copy(next, old)
	next[name] = c
	r.codecs.Store(&next)
	return nil
}

// Lookup returns the codec for name. The empty name selects Default.
func (r *Registry) Lookup(name Encoding) (Codec, error) {
	if name == "" {
		name = Default
	}
	c, ok := (*r.codecs.Load())[name]
	if !ok {
		return nil, errors.UnknownEncoding(errors.PhaseRegistry, string(name))
	}
	return c, nil
}

// Names returns the registered encoding names in sorted order.
func (r *Registry) Names() []Encoding {
	m := *r.codecs.Load()
	names := make([]Encoding, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
