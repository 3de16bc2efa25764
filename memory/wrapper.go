package memory

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/strview"
	"github.com/wippyai/strview/errors"
)

// Wrap adapts a wazero api.Memory to strview.Buffer.
func Wrap(mem api.Memory) strview.Buffer {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Region adapts the window [base, base+size) of mem to strview.Buffer.
// Offsets passed to the returned buffer are relative to base.
func Region(mem api.Memory, base, size uint32) (strview.Buffer, error) {
	if mem == nil {
		return nil, errors.InvalidInput(errors.PhaseMemory, "nil memory")
	}
	if uint64(base)+uint64(size) > uint64(mem.Size()) {
		return nil, errors.OutOfRange(errors.PhaseMemory, int(base), int(size), int(mem.Size()))
	}
	return &Wrapper{Mem: mem, base: base, size: size, fixed: true}, nil
}

// Wrapper adapts wazero api.Memory to strview.Buffer.
type Wrapper struct {
	Mem   api.Memory
	base  uint32
	size  uint32
	fixed bool
}

// Len returns the memory size in bytes, or the region size.
func (m *Wrapper) Len() int {
	if m.fixed {
		return int(m.size)
	}
	return int(m.Mem.Size())
}

// ByteAt reads the byte at off.
func (m *Wrapper) ByteAt(off int) byte {
	addr := m.addr(off)
	v, ok := m.Mem.ReadByte(addr)
	if !ok {
		panic(errors.OffsetOutOfRange(errors.PhaseMemory, off, m.Len()))
	}
	return v
}

// SetByteAt writes v at off.
func (m *Wrapper) SetByteAt(off int, v byte) {
	addr := m.addr(off)
	if !m.Mem.WriteByte(addr, v) {
		panic(errors.OffsetOutOfRange(errors.PhaseMemory, off, m.Len()))
	}
}

func (m *Wrapper) addr(off int) uint32 {
	if off < 0 || off >= m.Len() {
		panic(errors.OffsetOutOfRange(errors.PhaseMemory, off, m.Len()))
	}
	return m.base + uint32(off)
}
