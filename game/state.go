package game

import (
	"math/rand"
	"time"
)

// Internal truth authoritative match state

type State struct {
	Tick           int
	P1, P2         Paddle
	Ball           Ball
	Score1, Score2 int

	rng *rand.Rand
}

type Paddle struct {
	Y    int
	Move Command
}

type Ball struct {
	X, Y, DX, DY float64
	Speed        float64
	ServeTicks   int
}

// Command is the value of a paddle's sticky input register.
// CommandNone marks the absence of a new message this tick; it never
// enters a register, so a paddle keeps moving until an explicit
// CommandIdle arrives.
type Command uint8

const (
	CommandNone Command = iota
	CommandIdle
	CommandUp
	CommandDown
)

// New builds the starting state: paddles centered, scores zero, ball
// held at center with player 1 serving. A zero seed falls back to the
// clock; any other seed makes the serve sequence reproducible.
func New(seed int64) *State {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mid := FieldHeight/2 - PaddleHeight/2
	s := &State{
		P1:  Paddle{Y: mid, Move: CommandIdle},
		P2:  Paddle{Y: mid, Move: CommandIdle},
		rng: rand.New(rand.NewSource(seed)),
	}
	resetBall(s, 1)
	return s
}
