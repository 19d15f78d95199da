package kernel

import (
	"testing"
	"unsafe"
)

func TestMemset(t *testing.T) {
	// memset with a 0 size should be a no-op
	Memset(uintptr(0), 0x00, 0)

	for _, size := range []uintptr{100, 256, 1024, 4097} {
		buf := make([]byte, size)
		for index := 0; index < len(buf); index++ {
			buf[index] = 0xf0
		}

		addr := uintptr(unsafe.Pointer(&buf[0]))
		Memset(addr, 0xaa, size)

		for index := 0; index < len(buf); index++ {
			if got := buf[index]; got != 0xaa {
				t.Errorf("[size %d] expected byte %d to be set to 0xaa; got 0x%x", size, index, got)
				break
			}
		}
	}
}
