// control_channel.go - Bounded, non-blocking control message queue (§5, §6)

package main

import "log"

// controlChannelCapacity is the bounded channel capacity mentioned in §5:
// "the channel is bounded (capacity ~100)".
const controlChannelCapacity = 100

// ControlChannel carries ControlMessage values from the control thread
// (and the MIDI listener thread, forwarding as ModuleUpdate) into the
// audio loop. Sends never block: a full channel drops the message and
// logs a warning, which is acceptable because every message is either an
// idempotent latest-value parameter update or an idempotent lifecycle
// event (§5).
type ControlChannel struct {
	messages chan ControlMessage
}

// NewControlChannel allocates the bounded channel. Allocation happens
// once, at construction, never on the audio thread.
func NewControlChannel() *ControlChannel {
	return &ControlChannel{messages: make(chan ControlMessage, controlChannelCapacity)}
}

// TrySend attempts a non-blocking enqueue. Returns false if the channel
// was full and the message was dropped.
func (c *ControlChannel) TrySend(msg ControlMessage) bool {
	select {
	case c.messages <- msg:
		return true
	default:
		log.Printf("control channel full, dropping message: %#v", msg)
		return false
	}
}

// TryReceive attempts a non-blocking dequeue. Returns false if nothing was
// pending.
func (c *ControlChannel) TryReceive() (ControlMessage, bool) {
	select {
	case msg := <-c.messages:
		return msg, true
	default:
		return nil, false
	}
}
