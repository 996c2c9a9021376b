package protocol

import (
	"bytes"
	"testing"

	"github.com/semiguerra/lwip-pong/game"
)

func TestSnapshotRoundTrip(t *testing.T) {
	in := Snapshot{
		P1Y: 10, P2Y: 17,
		BallX: 40.25, BallY: 12.5,
		BallDX: -0.43, BallDY: 0.31,
		Score1: 3, Score2: 7,
		ServeTicks: 180,
	}
	line := EncodeSnapshot(in)
	if !bytes.HasPrefix(line, []byte(MsgState)) {
		t.Fatalf("encoded snapshot %q missing %q prefix", line, MsgState)
	}
	if line[len(line)-1] != '\n' {
		t.Fatalf("encoded snapshot %q not newline terminated", line)
	}

	out, ok := ParseSnapshot(bytes.TrimSuffix(line, []byte("\n")))
	if !ok {
		t.Fatalf("ParseSnapshot rejected own encoding %q", line)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestSnapshotWireFormat(t *testing.T) {
	s := Snapshot{P1Y: 10, P2Y: 12, BallX: 40, BallY: 12, BallDX: 0.5, BallDY: 0.1}
	got := string(EncodeSnapshot(s))
	want := "STATE:10,12,40.00,12.00,0.50,0.10,0,0,0\n"
	if got != want {
		t.Fatalf("snapshot line = %q, want %q", got, want)
	}
}

func TestParseSnapshotRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"STATE:",
		"STATE:1,2,3",
		"STATE:1,2,x,4.0,5.0,6.0,7,8,9",
		"NOISE:10,12,40.00,12.00,0.50,0.10,0,0,0",
		"WELCOME 1",
	}
	for _, line := range bad {
		if _, ok := ParseSnapshot([]byte(line)); ok {
			t.Fatalf("ParseSnapshot accepted %q", line)
		}
	}
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		line string
		cmd  game.Command
		ok   bool
	}{
		{"INPUT:UP", game.CommandUp, true},
		{"INPUT:DOWN", game.CommandDown, true},
		{"INPUT:IDLE", game.CommandIdle, true},
		{"INPUT:", game.CommandNone, false},
		{"INPUT:LEFT", game.CommandNone, false},
		{"INPUT:UPX", game.CommandNone, false},
		{"INP", game.CommandNone, false},
		{"", game.CommandNone, false},
	}
	for _, c := range cases {
		cmd, ok := ParseInput([]byte(c.line))
		if cmd != c.cmd || ok != c.ok {
			t.Fatalf("ParseInput(%q) = (%d,%v), want (%d,%v)", c.line, cmd, ok, c.cmd, c.ok)
		}
	}
}

func TestInputRoundTrip(t *testing.T) {
	for _, cmd := range []game.Command{game.CommandUp, game.CommandDown, game.CommandIdle} {
		line := EncodeInput(cmd)
		if line == nil || line[len(line)-1] != '\n' {
			t.Fatalf("EncodeInput(%d) = %q", cmd, line)
		}
		got, ok := ParseInput(bytes.TrimSuffix(line, []byte("\n")))
		if !ok || got != cmd {
			t.Fatalf("input round trip for %d got (%d,%v)", cmd, got, ok)
		}
	}
	if EncodeInput(game.CommandNone) != nil {
		t.Fatal("CommandNone should have no wire form")
	}
}

func TestHelloAndWelcome(t *testing.T) {
	if got := string(EncodeHello(1)); got != "HELLO:1\n" {
		t.Fatalf("EncodeHello(1) = %q", got)
	}
	if got := string(EncodeWelcome(2)); got != "WELCOME 2\n" {
		t.Fatalf("EncodeWelcome(2) = %q", got)
	}
	for _, line := range []string{"HELLO:1", "HELLO:2"} {
		if _, ok := ParseHello([]byte(line)); !ok {
			t.Fatalf("ParseHello rejected %q", line)
		}
	}
	for _, line := range []string{"HELLO:3", "HELLO:", "HELLO:12", "HELLO 1", "INPUT:UP"} {
		if _, ok := ParseHello([]byte(line)); ok {
			t.Fatalf("ParseHello accepted %q", line)
		}
	}
	slot, ok := ParseWelcome([]byte("WELCOME 2"))
	if !ok || slot != 2 {
		t.Fatalf("ParseWelcome = (%d,%v), want (2,true)", slot, ok)
	}
}

func TestLineBufferReassemblesSplitReads(t *testing.T) {
	var lb LineBuffer
	whole := "STATE:10,12,40.00,12.00,0.50,0.10,0,0,0\n"

	// Split the line at every possible boundary; each split must
	// decode identically to unsplit delivery.
	for cut := 1; cut < len(whole); cut++ {
		lb.Feed([]byte(whole[:cut]))
		if _, ok := lb.Next(); ok {
			t.Fatalf("cut %d: line popped before terminator arrived", cut)
		}
		lb.Feed([]byte(whole[cut:]))
		line, ok := lb.Next()
		if !ok {
			t.Fatalf("cut %d: no line after full delivery", cut)
		}
		if string(line) != whole[:len(whole)-1] {
			t.Fatalf("cut %d: got %q", cut, line)
		}
		if _, ok := lb.Next(); ok {
			t.Fatalf("cut %d: spurious extra line", cut)
		}
	}
}

func TestLineBufferPopsOneLinePerCall(t *testing.T) {
	var lb LineBuffer
	lb.Feed([]byte("INPUT:UP\nINPUT:DOWN\nINPUT:ID"))

	line, ok := lb.Next()
	if !ok || string(line) != "INPUT:UP" {
		t.Fatalf("first pop = (%q,%v)", line, ok)
	}
	line, ok = lb.Next()
	if !ok || string(line) != "INPUT:DOWN" {
		t.Fatalf("second pop = (%q,%v)", line, ok)
	}
	if _, ok := lb.Next(); ok {
		t.Fatal("partial trailing line popped early")
	}

	lb.Feed([]byte("LE\n"))
	line, ok = lb.Next()
	if !ok || string(line) != "INPUT:IDLE" {
		t.Fatalf("reassembled trailing line = (%q,%v)", line, ok)
	}
}

func TestLineBufferStripsCarriageReturn(t *testing.T) {
	var lb LineBuffer
	lb.Feed([]byte("HELLO:1\r\n"))
	line, ok := lb.Next()
	if !ok || string(line) != "HELLO:1" {
		t.Fatalf("got (%q,%v), want (HELLO:1,true)", line, ok)
	}
}

func TestLineBufferDropsOversizedPartial(t *testing.T) {
	var lb LineBuffer
	lb.Feed(bytes.Repeat([]byte("x"), maxPartial+1))
	lb.Feed([]byte("HELLO:1\n"))
	line, ok := lb.Next()
	if !ok || string(line) != "HELLO:1" {
		t.Fatalf("line after overflow = (%q,%v)", line, ok)
	}
}
