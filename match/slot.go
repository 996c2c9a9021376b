package match

import (
	"errors"
	"net"
	"time"

	"github.com/semiguerra/lwip-pong/game"
	"github.com/semiguerra/lwip-pong/protocol"
)

const (
	readSlice = time.Millisecond // per-tick read budget, must not stall the loop
	writeWait = 2 * time.Second  // send deadline before a slot is declared dead
)

// Slot is one player's claimed seat: the TCP stream, its line
// reassembly buffer, and a liveness flag. A dead slot stays claimed
// for the rest of the match but is excluded from reads and sends.
type Slot struct {
	ID    int // 1 or 2
	conn  net.Conn
	lines protocol.LineBuffer
	rbuf  []byte
	alive bool
}

func newSlot(id int, conn net.Conn) *Slot {
	return &Slot{
		ID:    id,
		conn:  conn,
		rbuf:  make([]byte, 1024),
		alive: true,
	}
}

// readCommand performs this tick's single bounded read and decodes
// every complete line it yielded; the last recognized command wins.
// Unterminated bytes stay buffered for later ticks. A timeout is the
// normal quiet case, not an error.
func (sl *Slot) readCommand() (game.Command, error) {
	if !sl.alive {
		return game.CommandNone, nil
	}
	sl.conn.SetReadDeadline(time.Now().Add(readSlice))
	n, err := sl.conn.Read(sl.rbuf)
	if n > 0 {
		sl.lines.Feed(sl.rbuf[:n])
	}

	cmd := game.CommandNone
	for {
		line, ok := sl.lines.Next()
		if !ok {
			break
		}
		if c, ok := protocol.ParseInput(line); ok {
			cmd = c
		}
	}

	if err != nil && !isTimeout(err) {
		return cmd, err
	}
	return cmd, nil
}

func (sl *Slot) send(line []byte) error {
	sl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_, err := sl.conn.Write(line)
	return err
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
