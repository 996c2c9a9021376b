package match

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/semiguerra/lwip-pong/protocol"
)

const (
	acceptPoll    = 100 * time.Millisecond // idle wait between accept attempts
	handshakeWait = 5 * time.Second        // budget for a claimer to present HELLO
)

// Listener is a net.Listener whose Accept can be bounded, so the
// admission loop stays sequential without busy-spinning and can notice
// cancellation between attempts. *net.TCPListener satisfies it.
type Listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

// acceptPlayers fills both slots before the first tick. Admission is
// fully sequential: one connection is examined at a time, and anything
// that is not a well-formed claim for a free slot is closed and
// forgotten while the loop keeps waiting.
func (m *Match) acceptPlayers(ctx context.Context) error {
	m.setPhase(PhaseAwaiting)
	for m.slots[0] == nil || m.slots[1] == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		m.ln.SetDeadline(time.Now().Add(acceptPoll))
		conn, err := m.ln.Accept()
		if err != nil {
			if isTimeout(err) {
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}
		m.admit(conn)
	}
	m.log.Infof("both slots claimed, match starting")
	return nil
}

// admit reads one claim line off a fresh connection and either seats
// it or closes it.
func (m *Match) admit(conn net.Conn) {
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.SetNoDelay(true)
	}

	line, err := readLine(conn, handshakeWait)
	if err != nil {
		m.log.Debugf("claim from %s never arrived: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}

	id, ok := protocol.ParseHello(line)
	if !ok {
		m.log.Debugf("malformed claim from %s: %q", conn.RemoteAddr(), line)
		conn.Close()
		return
	}
	if m.slots[id-1] != nil {
		m.log.Infof("slot %d already claimed, rejecting %s", id, conn.RemoteAddr())
		conn.Close()
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if _, err := conn.Write(protocol.EncodeWelcome(id)); err != nil {
		m.log.Infof("welcome to slot %d failed: %v", id, err)
		conn.Close()
		return
	}

	m.slots[id-1] = newSlot(id, conn)
	m.setPhase(PhaseAwaiting)
	m.log.Infof("player %d connected from %s", id, conn.RemoteAddr())
}

// readLine blocks for up to wait while reassembling one line.
func readLine(conn net.Conn, wait time.Duration) ([]byte, error) {
	var lines protocol.LineBuffer
	buf := make([]byte, 256)
	conn.SetReadDeadline(time.Now().Add(wait))
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			lines.Feed(buf[:n])
			if line, ok := lines.Next(); ok {
				return line, nil
			}
		}
		if err != nil {
			return nil, err
		}
	}
}
