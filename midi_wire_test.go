package main

import "testing"

func TestDecodeWireBytesKeyPress(t *testing.T) {
	msg, ok := DecodeWireBytes([]byte{0x90, 69, 127})
	if !ok {
		t.Fatal("expected a decoded message")
	}
	kp, ok := msg.(KeyPress)
	if !ok {
		t.Fatalf("got %T, want KeyPress", msg)
	}
	if kp.Note != 69 || kp.Velocity != 127 {
		t.Fatalf("got %+v, want note=69 velocity=127", kp)
	}
}

func TestDecodeWireBytesZeroVelocityIsKeyRelease(t *testing.T) {
	msg, ok := DecodeWireBytes([]byte{0x90, 69, 0})
	if !ok {
		t.Fatal("expected a decoded message")
	}
	if kr, ok := msg.(KeyRelease); !ok || kr.Note != 69 {
		t.Fatalf("got %+v, want KeyRelease{Note:69}", msg)
	}
}

func TestDecodeWireBytesIgnoresOtherStatuses(t *testing.T) {
	if _, ok := DecodeWireBytes([]byte{0xB0, 7, 100}); ok {
		t.Fatal("expected control-change status to be ignored")
	}
}
