package sched

import (
	"testing"
	"unsafe"

	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/mem"
)

func TestValidPriority(t *testing.T) {
	defer func(origCoop, origPreempt int) {
		config.NumCoopPrios = origCoop
		config.NumPreemptPrios = origPreempt
	}(config.NumCoopPrios, config.NumPreemptPrios)

	config.NumCoopPrios = 16
	config.NumPreemptPrios = 15

	specs := []struct {
		prio int
		exp  bool
	}{
		{-17, false},
		{-16, true},
		{0, true},
		{5, true},
		{15, true}, // idle priority
		{16, false},
	}

	for specIndex, spec := range specs {
		if got := ValidPriority(spec.prio); got != spec.exp {
			t.Errorf("[spec %d] expected ValidPriority(%d) to return %t; got %t", specIndex, spec.prio, spec.exp, got)
		}
	}
}

func TestInitThread(t *testing.T) {
	defer func(orig bool) { config.InitStacks = orig }(config.InitStacks)
	config.InitStacks = true

	var (
		thread Thread
		stack  [512]byte
	)
	stackStart := uintptr(unsafe.Pointer(&stack[0]))

	InitThread(&thread, stackStart, mem.Size(len(stack)), 5, OptEssential)

	if thread.State != StateReady {
		t.Error("expected thread state to be StateReady")
	}
	if thread.Priority != 5 {
		t.Errorf("expected thread priority to be 5; got %d", thread.Priority)
	}
	if thread.Options != OptEssential {
		t.Errorf("expected thread options to be OptEssential; got %d", thread.Options)
	}
	if thread.Stack.Start != stackStart || thread.Stack.Size != mem.Size(len(stack)) {
		t.Errorf("expected stack info {%x, %d}; got {%x, %d}", stackStart, len(stack), thread.Stack.Start, thread.Stack.Size)
	}

	for index, b := range stack {
		if b != 0xaa {
			t.Fatalf("expected stack byte %d to carry the 0xaa poison pattern; got 0x%x", index, b)
		}
	}
}

func TestInitThreadSkipsPoisoningWhenDisabled(t *testing.T) {
	defer func(orig bool) { config.InitStacks = orig }(config.InitStacks)
	config.InitStacks = false

	var (
		thread Thread
		stack  [64]byte
	)

	InitThread(&thread, uintptr(unsafe.Pointer(&stack[0])), mem.Size(len(stack)), 0, 0)

	for _, b := range stack {
		if b != 0 {
			t.Fatal("expected stack to remain untouched when poisoning is disabled")
		}
	}
}

func TestThreadMonitorNotification(t *testing.T) {
	defer SetThreadMonitor(nil)

	var (
		thread   Thread
		notified *Thread
	)

	// With no monitor registered the notification is a no-op.
	ThreadCreated(&thread)

	SetThreadMonitor(func(t *Thread) { notified = t })
	ThreadCreated(&thread)

	if notified != &thread {
		t.Fatal("expected the registered monitor to be notified with the created thread")
	}
}
