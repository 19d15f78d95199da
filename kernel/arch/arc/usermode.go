package arc

import (
	"github.com/andenore/zephyr/kernel"
	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/mem"
	"github.com/andenore/zephyr/kernel/mpu"
	"github.com/andenore/zephyr/kernel/sched"
)

var (
	errUserspaceDisabled  = &kernel.Error{Module: "arc", Message: "user-mode support is not configured"}
	errNoEnterRoutine     = &kernel.Error{Module: "arc", Message: "no userspace enter routine installed"}
	errTrampolineReturned = &kernel.Error{Module: "arc", Message: "userspace enter routine returned"}

	// userspaceEnterFn is mocked by tests and is automatically inlined by the compiler.
	userspaceEnterFn = userspaceEnter
)

// UserspaceEnterFn drops the privilege level of the calling thread and
// begins executing entry(p1, p2, p3) on the user region of its stack,
// described by stackBase and stackSize. The routine must not return.
type UserspaceEnterFn func(entry sched.EntryFn, p1, p2, p3, stackBase uintptr, stackSize mem.Size)

// SetUserspaceEnter installs the port's privilege-downgrade routine.
func SetUserspaceEnter(enterFn UserspaceEnterFn) { userspaceEnterFn = enterFn }

// userspaceEnter stands in until a port installs the real routine.
func userspaceEnter(entry sched.EntryFn, p1, p2, p3, stackBase uintptr, stackSize mem.Size) {
	panicFn(errNoEnterRoutine)
}

// UserModeEnter irrevocably demotes the calling thread to the user privilege
// level and diverges into entry(p1, p2, p3). The thread keeps running on the
// user region of its existing stack; the privileged region split off here is
// where future kernel entries such as traps will run. t must be the calling
// thread's own object and must have been created at kernel privilege with
// the trailing privileged region in place. The call never returns.
func UserModeEnter(t *sched.Thread, entry sched.EntryFn, p1, p2, p3 uintptr) {
	if !config.Userspace {
		panicFn(errUserspaceDisabled)
	}

	t.Options |= sched.OptUser

	// Rearrange the stack bookkeeping; the guard and privileged regions
	// move from below the kernel stack to above the user stack:
	//
	//	|----------------|    |---------------------|
	//	| stack guard    |    |  user stack         |
	//	|----------------| to |---------------------|
	//	| kernel thread  |    |  stack guard        |
	//	| stack          |    |---------------------|
	//	|                |    |  privileged stack   |
	//	---------------------------------------------
	t.Stack.Start = t.StackObj
	t.Stack.Size -= config.PrivStackSize
	t.Arch.PrivStackStart = t.Stack.Start + uintptr(t.Stack.Size) + uintptr(config.StackGuardSize)
	t.Arch.PrivStackSize = config.PrivStackSize

	// The new protection layout must take effect before the first
	// user-privilege instruction executes.
	mpu.ConfigureThread(t)

	userspaceEnterFn(entry, p1, p2, p3, t.Stack.Start, t.Stack.Size)
	panicFn(errTrampolineReturned)
}
