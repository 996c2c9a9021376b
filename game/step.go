package game

import "math"

// Step advances the match by exactly one tick. inputs carries the
// command read from each player's stream this tick, index 0 for
// player 1; CommandNone leaves that register untouched.
func Step(s *State, inputs [2]Command) {
	s.Tick++

	if inputs[0] != CommandNone {
		s.P1.Move = inputs[0]
	}
	if inputs[1] != CommandNone {
		s.P2.Move = inputs[1]
	}

	movePaddle(&s.P1)
	movePaddle(&s.P2)
	moveBall(s)
}

func movePaddle(p *Paddle) {
	switch p.Move {
	case CommandUp:
		p.Y--
	case CommandDown:
		p.Y++
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > FieldHeight-PaddleHeight {
		p.Y = FieldHeight - PaddleHeight
	}
}

func moveBall(s *State) {
	b := &s.Ball
	if b.ServeTicks > 0 {
		b.ServeTicks--
		return
	}

	b.X += b.DX
	b.Y += b.DY

	// Walls invert vertical velocity only; the position is left where
	// the tick put it.
	if b.Y < 0 || b.Y > FieldHeight-1 {
		b.DY = -b.DY
	}

	if b.DX < 0 && b.X <= PaddleOffsetX+PaddleWidth &&
		b.Y >= float64(s.P1.Y) && b.Y <= float64(s.P1.Y+PaddleHeight) {
		b.DX = -b.DX
	}
	if b.DX > 0 && b.X >= FieldWidth-PaddleOffsetX-PaddleWidth &&
		b.Y >= float64(s.P2.Y) && b.Y <= float64(s.P2.Y+PaddleHeight) {
		b.DX = -b.DX
	}

	if b.X < 0 {
		s.Score2++
		resetBall(s, 1)
	} else if b.X > FieldWidth {
		s.Score1++
		resetBall(s, 2)
	}
}

// resetBall recenters the ball and rolls a fresh serve toward the
// receiver. Angles flatter than MinServeSine are rejected so every
// serve carries some vertical motion.
func resetBall(s *State, server int) {
	b := &s.Ball
	b.X = FieldWidth / 2
	b.Y = FieldHeight / 2
	b.Speed = InitialBallSpeed

	var angle float64
	for {
		angle = s.rng.Float64()*ServeArc - ServeArc/2
		if math.Abs(math.Sin(angle)) >= MinServeSine {
			break
		}
	}

	dir := 1.0
	if server == 2 {
		dir = -1.0
	}
	b.DX = dir * b.Speed * math.Cos(angle)
	b.DY = b.Speed * math.Sin(angle)
	b.ServeTicks = ServeDelayTicks
}
