package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/strview/codec"
	sverrors "github.com/wippyai/strview/errors"
	"github.com/wippyai/strview/view"
)

// memoryWASM is a minimal WASM module with 1 page of memory exported as "memory"
var memoryWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

const pageSize = 65536

func instantiate(t *testing.T) api.Memory {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	compiled, err := rt.CompileModule(ctx, memoryWASM)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}

	mem := mod.ExportedMemory("memory")
	if mem == nil {
		t.Fatal("module has no exported memory")
	}
	return mem
}

func expectOutOfBounds(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok {
			t.Fatalf("expected out of bounds panic, got %v", rec)
		}
		if !errors.Is(err, sverrors.ErrOutOfRange) {
			t.Errorf("panic value = %v, want out_of_bounds", err)
		}
	}()
	fn()
}

func TestWrap_Nil(t *testing.T) {
	if buf := Wrap(nil); buf != nil {
		t.Error("expected nil for nil memory")
	}
	if _, err := Region(nil, 0, 1); err == nil {
		t.Error("expected error for nil memory")
	}
}

func TestWrapper_ReadWrite(t *testing.T) {
	mem := instantiate(t)
	buf := Wrap(mem)

	if buf.Len() != pageSize {
		t.Errorf("Len() = %d, want %d", buf.Len(), pageSize)
	}

	buf.SetByteAt(10, 0x41)
	if v, ok := mem.ReadByte(10); !ok || v != 0x41 {
		t.Errorf("memory byte = %#x, %v", v, ok)
	}
	if !mem.WriteByte(11, 0x42) {
		t.Fatal("WriteByte failed")
	}
	if got := buf.ByteAt(11); got != 0x42 {
		t.Errorf("ByteAt(11) = %#x", got)
	}
}

func TestWrapper_OutOfBounds(t *testing.T) {
	buf := Wrap(instantiate(t))

	expectOutOfBounds(t, func() { buf.ByteAt(pageSize) })
	expectOutOfBounds(t, func() { buf.ByteAt(-1) })
	expectOutOfBounds(t, func() { buf.SetByteAt(pageSize, 1) })
}

func TestWrapper_GrowsWithMemory(t *testing.T) {
	mem := instantiate(t)
	buf := Wrap(mem)

	if _, ok := mem.Grow(1); !ok {
		t.Fatal("Grow failed")
	}
	if buf.Len() != 2*pageSize {
		t.Errorf("Len() = %d after grow, want %d", buf.Len(), 2*pageSize)
	}
	buf.SetByteAt(pageSize+1, 7)
	if buf.ByteAt(pageSize+1) != 7 {
		t.Error("write to grown page lost")
	}
}

func TestRegion(t *testing.T) {
	mem := instantiate(t)

	buf, err := Region(mem, 100, 8)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 8 {
		t.Errorf("Len() = %d, want 8", buf.Len())
	}
	buf.SetByteAt(0, 'x')
	if v, _ := mem.ReadByte(100); v != 'x' {
		t.Errorf("region offset not applied, memory[100] = %#x", v)
	}
	expectOutOfBounds(t, func() { buf.ByteAt(8) })

	if _, err := Region(mem, pageSize-4, 8); !errors.Is(err, sverrors.ErrOutOfRange) {
		t.Errorf("err = %v, want out_of_bounds", err)
	}
	if _, err := Region(mem, pageSize, 0); err != nil {
		t.Errorf("empty region at end: %v", err)
	}
}

func TestView_OverLinearMemory(t *testing.T) {
	mem := instantiate(t)
	v := view.New()

	const ptr = 1024
	text := "What? £45!"
	n, err := v.WriteTerminated(Wrap(mem), ptr, text, codec.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(text)+1 {
		t.Errorf("n = %d, want %d", n, len(text)+1)
	}

	raw, ok := mem.Read(ptr, uint32(n))
	if !ok {
		t.Fatal("memory read failed")
	}
	if string(raw) != text+"\x00" {
		t.Errorf("memory = %q", raw)
	}

	res, err := v.ReadTerminated(Wrap(mem), ptr, codec.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != text || res.BytesConsumed != n {
		t.Errorf("got %+v", res)
	}
}

func TestView_RegionTruncates(t *testing.T) {
	mem := instantiate(t)
	v := view.New()

	buf, err := Region(mem, 2048, 5)
	if err != nil {
		t.Fatal(err)
	}
	n, err := v.WriteTerminated(buf, 0, "ABCDEFG", codec.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
	raw, _ := mem.Read(2048, 6)
	if string(raw) != "ABCD\x00\x00" {
		t.Errorf("memory = %q", raw)
	}
}
