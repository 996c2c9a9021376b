package match

import (
	"context"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/google/uuid"

	"github.com/semiguerra/lwip-pong/game"
	"github.com/semiguerra/lwip-pong/protocol"
)

const (
	PhaseAwaiting = "awaiting_players"
	PhaseRunning  = "running"
)

// Publisher receives every encoded snapshot line after the players do.
type Publisher interface {
	Publish(line []byte)
}

type Config struct {
	Listener  Listener
	Log       slog.Logger
	Publisher Publisher // optional spectator sink
	Seed      int64     // 0 seeds the serve RNG from the clock
}

// Match owns one game between two fixed slots. All game state is
// touched by the Run goroutine only; the mutex guards nothing but the
// published Status copy.
type Match struct {
	ID    uuid.UUID
	ln    Listener
	log   slog.Logger
	pub   Publisher
	state *game.State
	slots [2]*Slot

	mu     sync.Mutex
	status Status
}

// Status is a race-free copy of the observable match state, refreshed
// once per tick for the diagnostics surface.
type Status struct {
	MatchID string  `json:"matchId"`
	Phase   string  `json:"phase"`
	Tick    int     `json:"tick"`
	Score1  int     `json:"score1"`
	Score2  int     `json:"score2"`
	Slots   [2]bool `json:"slotsLive"`
}

func New(cfg Config) *Match {
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	m := &Match{
		ID:    uuid.New(),
		ln:    cfg.Listener,
		log:   log,
		pub:   cfg.Publisher,
		state: game.New(cfg.Seed),
	}
	m.setPhase(PhaseAwaiting)
	return m
}

// Run drives the whole lifecycle: sequential admission of both
// players, then the authoritative tick loop. The match has no terminal
// state of its own; Run returns only on cancellation or a listener
// failure.
func (m *Match) Run(ctx context.Context) error {
	if err := m.acceptPlayers(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / protocol.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.close()
			return ctx.Err()
		case <-ticker.C:
			m.tick()
		}
	}
}

func (m *Match) tick() {
	var inputs [2]game.Command
	for i, sl := range m.slots {
		cmd, err := sl.readCommand()
		inputs[i] = cmd
		if err != nil {
			m.dropSlot(sl, err)
		}
	}

	game.Step(m.state, inputs)
	m.broadcast()
	m.setPhase(PhaseRunning)
}

func (m *Match) broadcast() {
	line := protocol.EncodeSnapshot(m.snapshot())
	for _, sl := range m.slots {
		if !sl.alive {
			continue
		}
		if err := sl.send(line); err != nil {
			m.dropSlot(sl, err)
		}
	}
	if m.pub != nil {
		m.pub.Publish(line)
	}
}

func (m *Match) snapshot() protocol.Snapshot {
	s := m.state
	return protocol.Snapshot{
		P1Y:        s.P1.Y,
		P2Y:        s.P2.Y,
		BallX:      s.Ball.X,
		BallY:      s.Ball.Y,
		BallDX:     s.Ball.DX,
		BallDY:     s.Ball.DY,
		Score1:     s.Score1,
		Score2:     s.Score2,
		ServeTicks: s.Ball.ServeTicks,
	}
}

// dropSlot marks a slot dead after a transport error. The seat stays
// claimed; the match plays on for whoever is left.
func (m *Match) dropSlot(sl *Slot, err error) {
	if sl == nil || !sl.alive {
		return
	}
	sl.alive = false
	sl.conn.Close()
	m.log.Infof("player %d gone: %v", sl.ID, err)
}

func (m *Match) close() {
	for _, sl := range m.slots {
		if sl != nil && sl.alive {
			sl.alive = false
			sl.conn.Close()
		}
	}
}

func (m *Match) setPhase(phase string) {
	st := Status{
		MatchID: m.ID.String(),
		Phase:   phase,
		Tick:    m.state.Tick,
		Score1:  m.state.Score1,
		Score2:  m.state.Score2,
	}
	for i, sl := range m.slots {
		st.Slots[i] = sl != nil && sl.alive
	}
	m.mu.Lock()
	m.status = st
	m.mu.Unlock()
}

// Status returns the latest published copy; safe from any goroutine.
func (m *Match) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}
