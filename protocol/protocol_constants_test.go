package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgHello != "HELLO:" {
		t.Fatalf("MsgHello = %q, want %q", MsgHello, "HELLO:")
	}
	if MsgInput != "INPUT:" {
		t.Fatalf("MsgInput = %q, want %q", MsgInput, "INPUT:")
	}
	if MsgWelcome != "WELCOME " {
		t.Fatalf("MsgWelcome = %q, want %q", MsgWelcome, "WELCOME ")
	}
	if MsgState != "STATE:" {
		t.Fatalf("MsgState = %q, want %q", MsgState, "STATE:")
	}
}

func TestTimingConstants(t *testing.T) {
	if TickRate != 60 {
		t.Fatalf("TickRate = %d, want %d", TickRate, 60)
	}
	if ClientFrameRate != 60 {
		t.Fatalf("ClientFrameRate = %d, want %d", ClientFrameRate, 60)
	}
}

func TestTimingSanity(t *testing.T) {
	if TickRate <= 0 || ClientFrameRate <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	// Input coalescing stays bounded only while clients frame no
	// faster than the server ticks.
	if ClientFrameRate > TickRate {
		t.Fatalf("ClientFrameRate %d > TickRate %d", ClientFrameRate, TickRate)
	}
}
