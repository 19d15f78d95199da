// Package config holds the build-configuration switches for the kernel. Each
// switch mirrors a configuration option of the hardware target and selects
// which optional thread-stack features are compiled in: user-mode support,
// secure firmware, stack overflow checking, debug monitoring and the memory
// protection unit flavor.
//
// The switches are declared as variables rather than constants so that a
// port can set them once during early boot, before any thread is created,
// and so that tests can exercise every capability combination. They must not
// change while threads exist.
package config

import "github.com/andenore/zephyr/kernel/mem"

var (
	// Userspace enables support for threads running at the restricted
	// (user) privilege level. When enabled, kernel-only stacks carry a
	// trailing guard and privileged region and the status word of every
	// new thread permits user-mode sleep instructions.
	Userspace = true

	// SecureFirmware enables the secure-execution extension. When
	// enabled, the initial context record grows by one word holding a
	// snapshot of the secure status register taken at creation time.
	SecureFirmware = false

	// StackChecking enables hardware stack bounds checking. When
	// enabled, the status word of every new thread arms the check and
	// the thread records its stack top for the checker.
	StackChecking = true

	// ThreadMonitor enables the debug monitor hooks. When enabled, each
	// thread keeps a read-only reference to its initial context record
	// and the registered monitor is notified of every creation.
	ThreadMonitor = true

	// InitStacks fills freshly initialized stacks with a 0xaa pattern so
	// a debugger can estimate peak stack usage.
	InitStacks = true

	// MPUVersion selects the memory protection unit generation. Version
	// 2 requires power-of-2 region sizes; version 3 allows any size
	// rounded up to the stack alignment.
	MPUVersion = 3

	// PrivStackSize is the fixed size of the privileged region reserved
	// at the top of every user-capable stack.
	PrivStackSize = 256 * mem.Byte

	// StackGuardSize is the fixed size of the inaccessible guard region
	// separating the privileged region from the rest of the stack.
	StackGuardSize = 64 * mem.Byte

	// NumCoopPrios and NumPreemptPrios bound the valid thread priority
	// range: [-NumCoopPrios, NumPreemptPrios], the highest value being
	// reserved for the idle thread.
	NumCoopPrios    = 16
	NumPreemptPrios = 15
)
