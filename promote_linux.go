//go:build linux

// promote_linux.go - Real-time scheduling promotion for worker/audio threads (§4.10, §5)

package main

import (
	"log"

	"golang.org/x/sys/unix"
)

// promoteRealtime requests SCHED_FIFO priority for the calling OS thread.
// Must be called after runtime.LockOSThread, from the goroutine that will
// run the hot loop, since priority is a per-thread attribute. Failure
// (typically missing CAP_SYS_NICE) is logged and execution continues at
// the default scheduling class: thread promotion is an initialization
// failure class, not fatal (§7).
func promoteRealtime() {
	sp := &unix.SchedParam{Priority: int32(unix.SchedGetPriorityMax(unix.SCHED_FIFO))}
	if err := unix.SchedSetscheduler(0, unix.SCHED_FIFO, sp); err != nil {
		log.Printf("realtime scheduling promotion refused: %v", err)
	}
}
