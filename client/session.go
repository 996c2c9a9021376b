package client

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/decred/slog"

	"github.com/semiguerra/lwip-pong/game"
	"github.com/semiguerra/lwip-pong/predict"
	"github.com/semiguerra/lwip-pong/protocol"
)

const (
	connectWait = 5 * time.Second
	readSlice   = time.Millisecond // per-frame receive budget
	writeWait   = 2 * time.Second
)

// State is the authoritative, non-predicted part of the picture: the
// last snapshot's paddles, scores and serve countdown.
type State struct {
	P1Y, P2Y       int
	Score1, Score2 int
	ServeTicks     int
}

// Session owns the client side of one match: the TCP stream, the last
// authoritative view of the field, and the predicted ball.
type Session struct {
	slot int
	conn net.Conn
	log  slog.Logger

	lines protocol.LineBuffer
	rbuf  []byte

	state     State
	ball      predict.Ball
	lastInput game.Command
	welcomed  bool
	connected bool
}

// Dial connects, disables Nagle batching, and claims the requested
// slot. The server's welcome is consumed later by the normal receive
// pass; nothing blocks waiting for it.
func Dial(addr string, slot int, log slog.Logger) (*Session, error) {
	if slot != 1 && slot != 2 {
		return nil, fmt.Errorf("player must be 1 or 2, got %d", slot)
	}
	if log == nil {
		log = slog.Disabled
	}

	conn, err := net.DialTimeout("tcp", addr, connectWait)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.SetNoDelay(true)
	}
	if _, err := conn.Write(protocol.EncodeHello(slot)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("claiming slot %d: %w", slot, err)
	}

	return newSession(conn, slot, log), nil
}

func newSession(conn net.Conn, slot int, log slog.Logger) *Session {
	return &Session{
		slot:      slot,
		conn:      conn,
		log:       log,
		rbuf:      make([]byte, 256),
		connected: true,
	}
}

// Frame runs one fixed-rate client frame: advance the predicted ball
// by dt seconds, send the sampled command, then drain whatever the
// stream has delivered since last frame.
func (s *Session) Frame(cmd game.Command, dt float64, now time.Time) {
	s.ball.Advance(dt, now)
	s.sendInput(cmd)
	s.receive(now)
}

func (s *Session) sendInput(cmd game.Command) {
	if !s.connected {
		return
	}
	line := protocol.EncodeInput(cmd)
	if line == nil {
		return
	}
	s.lastInput = cmd
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if _, err := s.conn.Write(line); err != nil && !isTimeout(err) {
		s.markOffline(err)
	}
}

// receive performs this frame's single bounded read and applies every
// complete line it produced. The quiet case is a timeout with nothing
// buffered, which costs at most readSlice.
func (s *Session) receive(now time.Time) {
	if !s.connected {
		return
	}
	s.conn.SetReadDeadline(time.Now().Add(readSlice))
	n, err := s.conn.Read(s.rbuf)
	if n > 0 {
		s.lines.Feed(s.rbuf[:n])
		for {
			line, ok := s.lines.Next()
			if !ok {
				break
			}
			s.apply(line, now)
		}
	}
	if err != nil && !isTimeout(err) {
		s.markOffline(err)
	}
}

func (s *Session) apply(line []byte, now time.Time) {
	if snap, ok := protocol.ParseSnapshot(line); ok {
		s.state = State{
			P1Y:        snap.P1Y,
			P2Y:        snap.P2Y,
			Score1:     snap.Score1,
			Score2:     snap.Score2,
			ServeTicks: snap.ServeTicks,
		}
		s.ball.Observe(snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, now)
		return
	}
	if slot, ok := protocol.ParseWelcome(line); ok {
		if !s.welcomed {
			s.welcomed = true
			s.log.Debugf("seated as player %d", slot)
		}
		return
	}
	// Anything else is noise on the stream.
}

// markOffline flips the liveness flag once. The frame loop keeps
// running; with no fresh snapshots the ball freezes on its own.
func (s *Session) markOffline(err error) {
	if !s.connected {
		return
	}
	s.connected = false
	s.conn.Close()
	s.log.Infof("connection lost: %v", err)
}

func (s *Session) State() State {
	return s.state
}

// Ball returns the predicted ball position in field units.
func (s *Session) Ball() (x, y float64) {
	return s.ball.Position()
}

// BallValid reports whether a snapshot has seeded the prediction yet.
func (s *Session) BallValid() bool {
	return s.ball.Valid()
}

func (s *Session) LastInput() game.Command {
	return s.lastInput
}

func (s *Session) Connected() bool {
	return s.connected
}

func (s *Session) Slot() int {
	return s.slot
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
