// audio_loop.go - Buffer-filling audio master loop (§4.11)

package main

import (
	"runtime"
	"time"
)

// outputGain attenuates the raw sink-module mix before it reaches the
// audio sink (§3: "the final mix is attenuated (typically ×0.1)").
const outputGain = 0.1

// AudioLoop fills a fixed-size stereo frame buffer one graph tick at a
// time, paces itself to the buffer's real-time deadline, and drains
// pending control messages during the slack between compute-finish and
// deadline (§4.11). It owns the sample rate and sink handle, the two
// resources that live on the master thread, which Run itself locks to
// its OS thread and promotes to real-time priority (§5) — the DSP
// worker threads are promoted separately in scheduler.go.
type AudioLoop struct {
	table      *ModTable
	sink       Sink
	control    *ControlChannel
	bufferSize int
	sampleRate uint32
	frameBuf   []float32
}

func NewAudioLoop(table *ModTable, sink Sink, control *ControlChannel, bufferSize int, sampleRate uint32) *AudioLoop {
	return &AudioLoop{
		table:      table,
		sink:       sink,
		control:    control,
		bufferSize: bufferSize,
		sampleRate: sampleRate,
		frameBuf:   make([]float32, bufferSize*2),
	}
}

// Run executes the loop until a Close control message is observed, then
// returns. Process exit status is 0 on Close per §6.
func (a *AudioLoop) Run() {
	const drainEpsilon = 200 * time.Microsecond
	const backlogThreshold = 0 // drain whenever the sink has anything queued

	runtime.LockOSThread()
	promoteRealtime()

	if err := a.sink.Start(); err != nil {
		panic(err)
	}
	defer a.sink.Close()

	for {
		t0 := time.Now()

		for i := 0; i < a.bufferSize; i++ {
			l, r := a.table.Tick()
			a.frameBuf[2*i] = l * outputGain
			a.frameBuf[2*i+1] = r * outputGain
		}

		bufferTime := time.Duration(float64(a.bufferSize) / float64(a.sampleRate) * float64(time.Second))

		for time.Since(t0) < bufferTime-drainEpsilon && a.sink.Backlog() > backlogThreshold {
			if a.drainOne() {
				return
			}
		}

		for time.Since(t0) < bufferTime {
			// busy-wait: pacing slack is spent, don't steal CPU from the
			// next compute pass by parking here.
		}

		if err := a.sink.WriteFrames(a.frameBuf); err != nil {
			panic(err)
		}
	}
}

// drainOne dequeues and applies at most one pending control message.
// Returns true if the message was Close.
func (a *AudioLoop) drainOne() bool {
	msg, ok := a.control.TryReceive()
	if !ok {
		return false
	}
	switch m := msg.(type) {
	case Close:
		return true
	case UpdateSampleRate:
		a.sampleRate = m.SampleRate
	case ModuleUpdate:
		a.table.Update(m.ModuleID, m.Payload)
	}
	return false
}
