// Package mpu is the boundary between the thread-stack code and the memory
// protection unit driver. It owns the region-sizing rule that stack buffers
// must satisfy and forwards per-thread protection updates to the registered
// driver.
package mpu

import (
	"github.com/andenore/zephyr/kernel/config"
	"github.com/andenore/zephyr/kernel/mem"
	"github.com/andenore/zephyr/kernel/sched"
)

// DriverFn programs hardware protection regions from the current stack and
// privileged-stack descriptors of a thread. Implementations must be
// idempotent.
type DriverFn func(*sched.Thread)

// driverFn is the registered protection driver, nil on ports without an MPU.
var driverFn DriverFn

// SetDriver registers the protection driver for this port.
func SetDriver(fn DriverFn) { driverFn = fn }

// ConfigureThread programs the protection regions for t. It must be invoked
// after any change to the thread's stack descriptors and before the thread
// executes at the privilege level the new layout is meant for.
func ConfigureThread(t *sched.Thread) {
	if driverFn != nil {
		driverFn(t)
	}
}

// RegionSize rounds a requested stack size up to a size the configured MPU
// generation can describe: the next power of 2 for version 2, the next stack
// alignment boundary for version 3.
func RegionSize(size mem.Size) mem.Size {
	if config.MPUVersion == 2 {
		return mem.Pow2Ceil(size)
	}
	return mem.RoundUp(size, mem.StackAlign)
}
