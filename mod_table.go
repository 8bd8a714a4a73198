// mod_table.go - ModTable: owns the module graph and drives one tick (§3, §4.2, §7)

package main

import (
	"fmt"
	"log"
)

// boundsChecked is implemented by modules that want their input/output
// index ranges validated at graph-construction time. It is not part of
// the Module contract itself (§4.1 names exactly four operations); it is
// an optional extra a module can satisfy so NewModTable can catch a
// malformed cable list before the audio thread ever starts.
type boundsChecked interface {
	NumOutputs() int
	NumInputs() int
}

// ModTable is the graph: a dense module list, an ordered cable list, and
// the worker scheduler that processes the modules in parallel. One sink
// module supplies the engine's audible output (§4.2's "Open question":
// the sink is a construction parameter rather than a hard-coded index).
type ModTable struct {
	modules      []Module
	cables       []Cable
	scheduler    *Scheduler
	sinkModuleID int
	sinkStereo   bool
}

// NewModTable validates invariant 1 (module[i].ID() == i), invariant 2
// (every cable references modules and, where checkable, I/O indices that
// exist), and the sink module id, then starts the worker pool. A
// violation here is a construction-time fatal assertion (§7): it can
// never occur once a tick is running, so it panics rather than returning
// an error that every caller would have to thread through.
func NewModTable(threadCount int, modules []Module, cables []Cable, sinkModuleID int, sinkStereo bool) *ModTable {
	for i, m := range modules {
		if m.ID() != i {
			panic(fmt.Sprintf("module at index %d reports id %d, want %d", i, m.ID(), i))
		}
	}
	for _, c := range cables {
		if c.SourceModule < 0 || c.SourceModule >= len(modules) {
			panic(fmt.Sprintf("cable references unknown source module %d: %+v", c.SourceModule, c))
		}
		if c.TargetModule < 0 || c.TargetModule >= len(modules) {
			panic(fmt.Sprintf("cable references unknown target module %d: %+v", c.TargetModule, c))
		}
		if bc, ok := modules[c.SourceModule].(boundsChecked); ok {
			if c.SourceOutput < 0 || c.SourceOutput >= bc.NumOutputs() {
				panic(fmt.Sprintf("cable source output %d out of range for module %d: %+v", c.SourceOutput, c.SourceModule, c))
			}
		}
		if bc, ok := modules[c.TargetModule].(boundsChecked); ok {
			if c.TargetInput < 0 || c.TargetInput >= bc.NumInputs() {
				panic(fmt.Sprintf("cable target input %d out of range for module %d: %+v", c.TargetInput, c.TargetModule, c))
			}
		}
	}
	if sinkModuleID < 0 || sinkModuleID >= len(modules) {
		panic(fmt.Sprintf("sink module id %d out of range for %d modules", sinkModuleID, len(modules)))
	}

	mt := &ModTable{
		modules:      modules,
		cables:       cables,
		sinkModuleID: sinkModuleID,
		sinkStereo:   sinkStereo,
	}
	mt.scheduler = NewScheduler(threadCount, modules)
	mt.scheduler.Start()
	return mt
}

// Tick runs one sample: it waits for the workers' Process pass to finish,
// routes every cable in definition order (reading each source's *previous*
// Process output, which is what gives every connection its one-sample
// delay — §4.2), samples the sink, and releases the workers to process
// the next sample. Tick never allocates: ranging a slice and reading two
// float32 outputs are the only operations on this path.
func (mt *ModTable) Tick() (left, right float32) {
	mt.scheduler.AwaitProcessed()

	for _, c := range mt.cables {
		v := mt.modules[c.SourceModule].ReadOutput(c.SourceOutput)
		mt.modules[c.TargetModule].Modulate(c.TargetInput, v)
	}

	left = mt.modules[mt.sinkModuleID].ReadOutput(0)
	if mt.sinkStereo {
		right = mt.modules[mt.sinkModuleID].ReadOutput(1)
	} else {
		right = left
	}

	mt.scheduler.ReleaseWorkers()
	return left, right
}

// Update routes a module message to a single module by id. An out-of-range
// id is logged and dropped rather than panicking: by the time a
// ModuleUpdate reaches here it has already crossed the control channel
// asynchronously, so the graph itself is the last line of defense against
// a stale id (§7).
func (mt *ModTable) Update(id int, msg ModuleMessage) {
	if id < 0 || id >= len(mt.modules) {
		log.Printf("update for unknown module id %d dropped", id)
		return
	}
	mt.modules[id].Update(msg)
}

// Len returns the number of modules in the graph.
func (mt *ModTable) Len() int { return len(mt.modules) }
