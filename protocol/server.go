package protocol

import (
	"bytes"
	"fmt"
)

// Lines sent by the server.

// Snapshot is the full authoritative state carried by one STATE line.
// Paddle positions, scores and the serve countdown are integers; ball
// position and velocity are fixed to two decimals on the wire.
type Snapshot struct {
	P1Y, P2Y       int
	BallX, BallY   float64
	BallDX, BallDY float64
	Score1, Score2 int
	ServeTicks     int
}

func EncodeSnapshot(s Snapshot) []byte {
	return fmt.Appendf(nil, "%s%d,%d,%.2f,%.2f,%.2f,%.2f,%d,%d,%d\n",
		MsgState, s.P1Y, s.P2Y, s.BallX, s.BallY, s.BallDX, s.BallDY,
		s.Score1, s.Score2, s.ServeTicks)
}

// ParseSnapshot decodes a STATE line. A line that does not yield all
// nine fields decodes to nothing and should be discarded.
func ParseSnapshot(line []byte) (Snapshot, bool) {
	var s Snapshot
	n, err := fmt.Sscanf(string(line), MsgState+"%d,%d,%f,%f,%f,%f,%d,%d,%d",
		&s.P1Y, &s.P2Y, &s.BallX, &s.BallY, &s.BallDX, &s.BallDY,
		&s.Score1, &s.Score2, &s.ServeTicks)
	if err != nil || n != 9 {
		return Snapshot{}, false
	}
	return s, true
}

// EncodeWelcome frames the acknowledgment for a claimed slot.
func EncodeWelcome(slot int) []byte {
	return fmt.Appendf(nil, "%s%d\n", MsgWelcome, slot)
}

func ParseWelcome(line []byte) (int, bool) {
	rest, ok := bytes.CutPrefix(line, []byte(MsgWelcome))
	if !ok {
		return 0, false
	}
	switch string(rest) {
	case "1":
		return 1, true
	case "2":
		return 2, true
	}
	return 0, false
}
