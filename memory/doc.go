// Package memory exposes wazero linear memory as a strview.Buffer.
//
// Wrap a whole memory:
//
//	buf := memory.Wrap(mod.ExportedMemory("memory"))
//	n, err := v.WriteTerminated(buf, ptr, "hello", codec.UTF8)
//
// Or a guest allocation, so bounded operations cannot spill past it:
//
//	buf, err := memory.Region(mod.Memory(), ptr, size)
//	res, err := v.ReadTerminated(buf, 0, codec.UTF8)
//
// Len tracks the memory's current size, so a wrapped memory grows with the
// guest. Accesses outside the memory panic with an *errors.Error of kind
// out_of_bounds; the view package never issues them.
package memory
