package arc

import (
	"github.com/andenore/zephyr/kernel"
	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/cpu"
	"github.com/andenore/zephyr/kernel/kfmt"
	"github.com/andenore/zephyr/kernel/mem"
	"github.com/andenore/zephyr/kernel/mpu"
	"github.com/andenore/zephyr/kernel/sched"
)

var (
	// panicFn is mocked by tests and is automatically inlined by the compiler.
	panicFn = kfmt.Panic

	errBadPriority   = &kernel.Error{Module: "arc", Message: "thread priority outside the configured range"}
	errStackTooSmall = &kernel.Error{Module: "arc", Message: "stack buffer cannot hold the initial context record"}
)

// NewThread initializes a new thread from its stack space. An initial
// context record, to be "restored" by the context-switch path, is carved
// from the high end of the stack so the thread can reuse that space once it
// is running. The record holds the status word, the entry trampoline
// address and the entry point with its three parameters.
//
// The caller owns both the thread object and the stack buffer; nothing is
// allocated here. On userspace-capable builds a kernel (non-user) thread's
// buffer must carry config.StackGuardSize + config.PrivStackSize bytes
// beyond stackSize, as arranged by the stack allocator; user threads supply
// their buffer as-is and have their privileged stack pre-reserved above it.
//
// An out-of-range priority or a buffer too small for the record is a caller
// logic error and panics rather than returning.
func NewThread(t *sched.Thread, stack uintptr, stackSize mem.Size, entry sched.EntryFn, p1, p2, p3 uintptr, prio int, opts sched.Options) {
	if !sched.ValidPriority(prio) {
		panicFn(errBadPriority)
	}

	stackMem := stack
	if config.Userspace {
		stackSize = mpu.RegionSize(stackSize)
	}
	stackEnd := stackMem + uintptr(stackSize)

	if config.Userspace && opts&sched.OptUser == 0 {
		// For a kernel thread the privileged stack is merged into the
		// thread stack:
		//
		//	|---------------------|    |----------------|
		//	|  user stack         |    | stack guard    |
		//	|---------------------| to |----------------|
		//	|  stack guard        |    | kernel thread  |
		//	|---------------------|    | stack          |
		//	|  privileged stack   |    |                |
		//	---------------------------------------------
		stackMem += uintptr(config.StackGuardSize)
		stackSize += config.PrivStackSize
		stackEnd += uintptr(config.PrivStackSize + config.StackGuardSize)
	}

	t.StackObj = stack
	sched.InitThread(t, stackMem, stackSize, prio, opts)

	// Carve the initial context record from the aligned top of the stack.
	frameBase := mem.AlignDown(stackEnd, mem.StackAlign) - uintptr(FrameSize())
	if frameBase < stackMem {
		panicFn(errStackTooSmall)
	}

	var frame Frame
	if config.Userspace && opts&sched.OptUser != 0 {
		frame.PC = cpu.Word(userThreadEntryAddr)
	} else {
		frame.PC = cpu.Word(threadEntryAddr)
	}

	if config.SecureFirmware {
		frame.SecStat = cpu.ReadAuxReg(cpu.AuxRegSecStat)
	}

	// The status word arms the default deferred interrupt level but
	// leaves the enable bit clear: the final instruction of the
	// context-switch path performs the actual enable, so a new thread
	// cannot be preempted before its context is fully committed.
	status := cpu.Status{Level: cpu.DefIRQLevel}
	if config.StackChecking {
		status.StackCheck = true
		t.Arch.StackBase = stackEnd
	}
	if config.Userspace {
		// US reads as zero in user mode. Setting it for kernel
		// threads as well costs nothing and keeps the user-mode
		// transition path free of status fixups.
		status.UserSleep = true
	}
	frame.Status32 = status.Word()

	frame.R0 = cpu.Word(funcAddr(entry))
	frame.R1 = cpu.Word(p1)
	frame.R2 = cpu.Word(p2)
	frame.R3 = cpu.Word(p3)
	frame.writeTo(frameBase)

	// The context-switch path restores the callee-saved area from just
	// below the record before popping the record itself.
	t.SavedSP = frameBase - uintptr(cpu.CalleeSavedSize)
	t.Arch.IntlockKey = cpu.IntlockKeyUnlocked
	t.Arch.RelinquishCause = cpu.CauseCoop

	if config.Userspace {
		if opts&sched.OptUser != 0 {
			t.Arch.PrivStackStart = stackEnd + uintptr(config.StackGuardSize)
			t.Arch.PrivStackSize = config.PrivStackSize
		} else {
			t.Arch.PrivStackStart = 0
			t.Arch.PrivStackSize = 0
		}
	}

	if config.ThreadMonitor {
		// Give the debug monitor direct access to the entry point and
		// its parameters.
		t.EntryRecord = frameBase
	}

	sched.ThreadCreated(t)
}
