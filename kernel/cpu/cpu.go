// Package cpu models the processor state that the thread-stack code needs to
// manipulate: the status word written into every initial context record, the
// interrupt-lock key encoding, the relinquish-cause tags consumed by the
// context-switch path and the geometry of the callee-saved register area.
package cpu

import (
	"github.com/andenore/zephyr/kernel/mem"
	"unsafe"
)

// Word is a machine register value. The hardware target ties register width
// to pointer width so Word follows the build's pointer size.
type Word uintptr

// WordSize is the size of a single register on the stack.
const WordSize = mem.Size(unsafe.Sizeof(Word(0)))

const (
	// CalleeSavedWords is the number of registers the context-switch
	// path saves and restores below the initial context record: r13-r25,
	// the global pointer, the frame pointer and the link-backup register.
	CalleeSavedWords = 16

	// CalleeSavedSize is the size of the callee-saved register area.
	CalleeSavedSize = mem.Size(CalleeSavedWords) * WordSize
)

// IntlockKey is the saved interrupt-lock state of a thread. The encoding
// follows the CLRI instruction result layout:
//
//	dst[31:6] dst[5] dst[4]       dst[3:0]
//	   0        1    STATUS32.IE  STATUS32.E[3:0]
type IntlockKey uint32

// IntlockKeyUnlocked is the key for a thread that holds no interrupt lock
// and runs at the default interrupt level.
const IntlockKeyUnlocked IntlockKey = 0x3f

// RelinquishCause records why a thread last gave up the processor. The
// context-switch path inspects it to decide how much context to restore.
type RelinquishCause uint8

const (
	// CauseNone marks a thread that has never run.
	CauseNone RelinquishCause = iota

	// CauseCoop marks a cooperative switch; only the callee-saved area
	// and the context record need restoring. Freshly created threads
	// start with this cause.
	CauseCoop

	// CauseRIRQ marks preemption by a regular interrupt.
	CauseRIRQ

	// CauseFIRQ marks preemption by a fast interrupt.
	CauseFIRQ
)

// AuxReg identifies an auxiliary register.
type AuxReg uint32

// AuxRegSecStat is the secure status auxiliary register. Its value is
// snapshotted into the context record of new threads on secure firmware
// builds.
const AuxRegSecStat AuxReg = 0x9

// auxRegReadFn reads an auxiliary register. The default reports all-zero
// registers; a port installs the real accessor with SetAuxRegReader before
// starting the kernel.
var auxRegReadFn = func(AuxReg) Word { return 0 }

// SetAuxRegReader installs the auxiliary register accessor for this port.
func SetAuxRegReader(readFn func(AuxReg) Word) { auxRegReadFn = readFn }

// ReadAuxReg returns the current value of the given auxiliary register.
func ReadAuxReg(reg AuxReg) Word { return auxRegReadFn(reg) }

// Halt stops instruction execution.
func Halt() {
	for {
	}
}
