package arc

import (
	"reflect"

	"github.com/andenore/zephyr/kernel"
)

// The entry trampolines are the first instructions a new thread executes.
// The context-switch path pops the initial context record, leaving the true
// entry point in r0 and its parameters in r1-r3, and jumps to the record's
// PC field, which points at one of these routines. They adapt the argument
// registers into a call to the entry function at the right privilege level,
// so the record layout never depends on the entry signature. A port
// provides both in assembly; the definitions below give the PC field a
// real, distinguishable address and trap any call made outside a context
// switch.

var (
	errKernelTrampoline = &kernel.Error{Module: "arc", Message: "kernel entry trampoline invoked outside a context switch"}
	errUserTrampoline   = &kernel.Error{Module: "arc", Message: "user entry trampoline invoked outside a context switch"}

	threadEntryAddr     = funcAddr(threadEntry)
	userThreadEntryAddr = funcAddr(userThreadEntry)
)

// threadEntry begins execution of a thread at kernel privilege.
func threadEntry() {
	panicFn(errKernelTrampoline)
}

// userThreadEntry begins execution of a user thread.
func userThreadEntry() {
	panicFn(errUserTrampoline)
}

// funcAddr returns the code address of fn.
func funcAddr(fn interface{}) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
