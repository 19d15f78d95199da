// Package sched defines the thread object and the generic,
// architecture-neutral part of thread initialization. The
// architecture-specific creation path carves the initial context record and
// fills in the Arch fields; everything in this package is shared by all
// ports.
package sched

import (
	"github.com/andenore/zephyr/kernel"
	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/cpu"
	"github.com/andenore/zephyr/kernel/mem"
)

// EntryFn is the signature of a thread entry point. The three parameters
// are forwarded verbatim from thread creation.
type EntryFn func(p1, p2, p3 uintptr)

// Options is the bit-set of thread creation options.
type Options uint8

const (
	// OptEssential marks a thread whose termination is fatal to the
	// system.
	OptEssential Options = 1 << iota

	// OptUser marks a thread that runs at the restricted privilege
	// level. Once set it is never cleared.
	OptUser
)

// State describes the scheduling state of a thread.
type State uint8

const (
	// StateNew marks a thread object whose creation has not completed.
	StateNew State = iota

	// StateReady marks a thread that may be picked by the scheduler.
	StateReady
)

// StackInfo records the region of a thread's stack buffer that is usable at
// its current privilege level.
type StackInfo struct {
	// Start is the lowest usable address.
	Start uintptr

	// Size is the usable size in bytes. For a thread demoted to user
	// privilege this shrinks to exclude the privileged region.
	Size mem.Size
}

// ArchInfo holds the architecture bookkeeping fields of a thread. They are
// written once at creation; only the privileged-stack descriptors mutate
// later, exactly once, when the thread enters user mode.
type ArchInfo struct {
	// IntlockKey is the saved interrupt-lock state restored by the
	// context-switch path.
	IntlockKey cpu.IntlockKey

	// RelinquishCause records why the thread last gave up the processor.
	RelinquishCause cpu.RelinquishCause

	// StackBase is the stack top boundary used by hardware stack
	// checking. Only valid when stack checking is configured.
	StackBase uintptr

	// PrivStackStart and PrivStackSize describe the privileged region a
	// user thread switches to on kernel entries such as traps. Both are
	// zero for threads that run at kernel privilege.
	PrivStackStart uintptr
	PrivStackSize  mem.Size
}

// Thread is the kernel thread object. The caller owns the object and the
// stack buffer it references; neither is allocated by this package.
type Thread struct {
	Name     string
	State    State
	Priority int
	Options  Options

	// StackObj is the base address of the raw stack buffer as supplied
	// at creation, before any partitioning.
	StackObj uintptr

	// Stack is the usable stack region at the current privilege level.
	Stack StackInfo

	// SavedSP is the resume stack pointer: the address the
	// context-switch path restores the callee-saved area from. Written
	// once at creation and mutated only by the context-switch mechanism.
	SavedSP uintptr

	// EntryRecord points at the thread's initial context record when the
	// debug monitor is configured. Introspection only; the record must
	// never be mutated through it.
	EntryRecord uintptr

	Arch ArchInfo
}

// ValidPriority reports whether prio lies within the configured priority
// range. The highest value is reserved for the idle thread.
func ValidPriority(prio int) bool {
	return prio >= -config.NumCoopPrios && prio <= config.NumPreemptPrios
}

// InitThread sets the non-architecture-specific fields of a thread under
// creation. It must run before the initial context record is carved from the
// stack: when stack poisoning is configured it fills the usable region with
// a 0xaa pattern that the record write would otherwise clobber.
func InitThread(t *Thread, stackStart uintptr, stackSize mem.Size, prio int, opts Options) {
	if config.InitStacks {
		kernel.Memset(stackStart, 0xaa, uintptr(stackSize))
	}

	t.State = StateReady
	t.Priority = prio
	t.Options = opts
	t.Stack = StackInfo{Start: stackStart, Size: stackSize}
}

// threadMonitorFn is the registered debug monitor callback, nil when no
// monitor is attached.
var threadMonitorFn func(*Thread)

// SetThreadMonitor registers a debug monitor that is notified after every
// thread creation.
func SetThreadMonitor(monitorFn func(*Thread)) { threadMonitorFn = monitorFn }

// ThreadCreated notifies the registered debug monitor that the creation of t
// has completed.
func ThreadCreated(t *Thread) {
	if threadMonitorFn != nil {
		threadMonitorFn(t)
	}
}
