// Package arc implements the ARCv2 thread primitives: carving the initial
// execution context for a new thread out of its stack buffer and demoting a
// running thread to the user privilege level. The layout produced here is
// consumed verbatim by the context-switch path, which restores the
// callee-saved area and then pops the context record to start the thread.
package arc

import (
	"io"
	"unsafe"

	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/cpu"
	"github.com/andenore/zephyr/kernel/kfmt"
	"github.com/andenore/zephyr/kernel/mem"
)

// Frame is the initial context record placed at the top of a new thread's
// stack. The context-switch path pops it field by field, so the serialized
// layout below is fixed by that convention and must never change
// independently of it. In stack memory the fields occupy ascending
// addresses in declaration order, with SecStat present only on secure
// firmware builds.
type Frame struct {
	// PC is the address execution starts at: one of the entry
	// trampolines.
	PC cpu.Word

	// SecStat is a snapshot of the secure status register taken at
	// creation time. Unused unless secure firmware is configured.
	SecStat cpu.Word

	// Status32 is the serialized processor status word.
	Status32 cpu.Word

	// R3 through R0 are the argument registers. R0 carries the thread's
	// true entry point, R1-R3 its three parameters.
	R3, R2, R1, R0 cpu.Word
}

// frameWords returns the number of words the serialized record occupies.
func frameWords() int {
	if config.SecureFirmware {
		return 7
	}
	return 6
}

// FrameSize returns the size of the serialized record for the current build
// configuration.
func FrameSize() mem.Size {
	return mem.Size(frameWords()) * cpu.WordSize
}

// wordsAt overlays a word slice on top of the record region at addr.
func wordsAt(addr uintptr, count int) []cpu.Word {
	return unsafe.Slice((*cpu.Word)(unsafe.Pointer(addr)), count)
}

// writeTo serializes the record into stack memory at addr, which must be
// word aligned.
func (f *Frame) writeTo(addr uintptr) {
	words := wordsAt(addr, frameWords())

	index := 0
	words[index] = f.PC
	index++
	if config.SecureFirmware {
		words[index] = f.SecStat
		index++
	}
	words[index] = f.Status32
	words[index+1] = f.R3
	words[index+2] = f.R2
	words[index+3] = f.R1
	words[index+4] = f.R0
}

// FrameAt decodes the initial context record located at addr. It exists for
// debug-monitor introspection; the live record must never be mutated through
// the returned copy.
func FrameAt(addr uintptr) Frame {
	words := wordsAt(addr, frameWords())

	var f Frame
	index := 0
	f.PC = words[index]
	index++
	if config.SecureFirmware {
		f.SecStat = words[index]
		index++
	}
	f.Status32 = words[index]
	f.R3 = words[index+1]
	f.R2 = words[index+2]
	f.R1 = words[index+3]
	f.R0 = words[index+4]
	return f
}

// DumpTo outputs the record contents to w.
func (f *Frame) DumpTo(w io.Writer) {
	kfmt.Fprintf(w, "PC       = %16x\n", uint64(f.PC))
	if config.SecureFirmware {
		kfmt.Fprintf(w, "SEC_STAT = %16x\n", uint64(f.SecStat))
	}
	kfmt.Fprintf(w, "STATUS32 = %16x\n", uint64(f.Status32))
	kfmt.Fprintf(w, "R0       = %16x R1  = %16x\n", uint64(f.R0), uint64(f.R1))
	kfmt.Fprintf(w, "R2       = %16x R3  = %16x\n", uint64(f.R2), uint64(f.R3))
}
