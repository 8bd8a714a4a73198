// scheduler.go - Spin-barrier parallel module scheduler (§4.10, §5)

package main

import (
	"runtime"
	"sync/atomic"
)

// spinBarrier is a two-atomic barrier (arrival counter + generation
// counter) that never parks into the kernel: a real-time audio tick is on
// the order of tens to hundreds of microseconds, and kernel scheduling
// jitter dwarfs spin cost (§4.10).
type spinBarrier struct {
	count      int64
	arrival    atomic.Int64
	generation atomic.Int64
}

func newSpinBarrier(parties int) *spinBarrier {
	return &spinBarrier{count: int64(parties)}
}

func (b *spinBarrier) wait() {
	gen := b.generation.Load()
	if b.arrival.Add(1) == b.count {
		b.arrival.Store(0)
		b.generation.Add(1)
		return
	}
	for b.generation.Load() == gen {
		runtime.Gosched()
	}
}

// Scheduler partitions a module list into THREAD_COUNT contiguous chunks,
// one per worker goroutine, each pinned to its own OS thread and promoted
// to real-time scheduling priority. Workers never suspend: they spin on
// the sample barrier waiting for the next tick, run Process on every
// module in their chunk exactly once, then spin on the process barrier
// until every worker and the main thread have arrived there. The main
// thread routes cables and samples the sink before it releases the
// sample barrier for the next tick.
type Scheduler struct {
	threadCount    int
	sampleBarrier  *spinBarrier
	processBarrier *spinBarrier
	chunks         [][]Module
}

// NewScheduler partitions modules into threadCount contiguous chunks. The
// barriers are sized threadCount+1: one party per worker plus the main
// (audio) thread that drives AwaitProcessed/ReleaseWorkers.
func NewScheduler(threadCount int, modules []Module) *Scheduler {
	if threadCount < 1 {
		threadCount = 1
	}
	s := &Scheduler{
		threadCount:    threadCount,
		sampleBarrier:  newSpinBarrier(threadCount + 1),
		processBarrier: newSpinBarrier(threadCount + 1),
	}
	chunkLen := (len(modules) + threadCount - 1) / threadCount
	if chunkLen < 1 {
		chunkLen = 1
	}
	for i := 0; i < threadCount; i++ {
		start := i * chunkLen
		if start > len(modules) {
			start = len(modules)
		}
		end := start + chunkLen
		if end > len(modules) {
			end = len(modules)
		}
		s.chunks = append(s.chunks, modules[start:end])
	}
	return s
}

// Start spawns one worker goroutine per chunk. Each worker locks itself to
// its own OS thread before requesting real-time promotion, since
// scheduling priority is a per-OS-thread property and a parked goroutine
// could otherwise be resumed on a different thread.
func (s *Scheduler) Start() {
	for _, chunk := range s.chunks {
		go s.runWorker(chunk)
	}
}

func (s *Scheduler) runWorker(chunk []Module) {
	runtime.LockOSThread()
	promoteRealtime()

	s.processBarrier.wait()
	for {
		s.sampleBarrier.wait()
		for _, m := range chunk {
			m.Process()
		}
		s.processBarrier.wait()
	}
}

// AwaitProcessed blocks (by spinning) until every worker has finished its
// Process pass for the in-flight sample.
func (s *Scheduler) AwaitProcessed() {
	s.processBarrier.wait()
}

// ReleaseWorkers signals every worker to begin processing the next sample.
func (s *Scheduler) ReleaseWorkers() {
	s.sampleBarrier.wait()
}
