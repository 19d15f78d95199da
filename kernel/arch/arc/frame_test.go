package arc

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"unsafe"

	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/cpu"
)

func TestFrameSize(t *testing.T) {
	defer restoreConfig()()

	config.SecureFirmware = false
	if exp := 6 * cpu.WordSize; FrameSize() != exp {
		t.Errorf("expected frame size %d without the secure extension; got %d", exp, FrameSize())
	}

	config.SecureFirmware = true
	if exp := 7 * cpu.WordSize; FrameSize() != exp {
		t.Errorf("expected frame size %d with the secure extension; got %d", exp, FrameSize())
	}
}

func TestFrameRoundTrip(t *testing.T) {
	defer restoreConfig()()

	frame := Frame{
		PC:       0x1111,
		SecStat:  0x2222,
		Status32: 0x3333,
		R3:       3,
		R2:       2,
		R1:       1,
		R0:       0xaaaa,
	}

	for _, secure := range []bool{false, true} {
		config.SecureFirmware = secure

		buf := make([]byte, FrameSize())
		addr := uintptr(unsafe.Pointer(&buf[0]))

		frame.writeTo(addr)
		got := FrameAt(addr)

		exp := frame
		if !secure {
			exp.SecStat = 0
		}
		if got != exp {
			t.Errorf("[secure %t] expected record to round-trip as %+v; got %+v", secure, exp, got)
		}

		// The serialized field order is fixed by the context-switch
		// pop sequence: PC first, R0 last.
		words := wordsAt(addr, frameWords())
		if words[0] != frame.PC {
			t.Errorf("[secure %t] expected PC at the lowest record address", secure)
		}
		if words[frameWords()-1] != frame.R0 {
			t.Errorf("[secure %t] expected R0 at the highest record address", secure)
		}

		runtime.KeepAlive(buf)
	}
}

func TestFrameDumpTo(t *testing.T) {
	defer restoreConfig()()
	config.SecureFirmware = false

	frame := Frame{PC: 0x1111, Status32: 0x3333}

	var buf bytes.Buffer
	frame.DumpTo(&buf)

	out := buf.String()
	if !strings.Contains(out, "STATUS32 = 0000000000003333") {
		t.Fatalf("expected dump to contain the status word; got:\n%s", out)
	}
	if !strings.Contains(out, "PC       = 0000000000001111") {
		t.Fatalf("expected dump to contain the program counter; got:\n%s", out)
	}
}
