package client

import (
	"strconv"

	"github.com/semiguerra/lwip-pong/game"
	"github.com/semiguerra/lwip-pong/protocol"
)

// Renderer is the primitive surface a frame is drawn onto, in screen
// pixels. Implementations own the window; the session never sees one.
type Renderer interface {
	FillRect(x, y, w, h float64)
	FillCircle(x, y, r float64)
	Text(x, y int, s string)
}

// Controls samples whatever direction the player is holding right
// now. Idle is a real answer, not an absence.
type Controls interface {
	Direction() game.Command
}

// Screen layout in pixels. Field units scale onto this.
const (
	ScreenWidth  = 800
	ScreenHeight = 600

	paddlePx  = 20  // paddle width on screen
	paddlePxH = 100 // paddle height on screen
	ballPx    = 15  // ball radius on screen
)

// Draw maps the session's current picture from field units to screen
// units: paddles and scores from the last snapshot, the ball from the
// prediction, and the serve countdown in place of a held ball.
func Draw(r Renderer, s *Session) {
	st := s.State()

	p1x := float64(game.PaddleOffsetX) / game.FieldWidth * ScreenWidth
	p2x := float64(game.FieldWidth-game.PaddleOffsetX-game.PaddleWidth) / game.FieldWidth * ScreenWidth
	r.FillRect(p1x, float64(st.P1Y)/game.FieldHeight*ScreenHeight, paddlePx, paddlePxH)
	r.FillRect(p2x, float64(st.P2Y)/game.FieldHeight*ScreenHeight, paddlePx, paddlePxH)

	for y := 0; y < ScreenHeight; y += 30 {
		r.FillRect(ScreenWidth/2-2, float64(y), 4, 20)
	}

	r.Text(ScreenWidth/4, 30, strconv.Itoa(st.Score1))
	r.Text(3*ScreenWidth/4, 30, strconv.Itoa(st.Score2))

	if st.ServeTicks > 0 {
		// Rounded up, 30 ticks per displayed unit.
		countdown := (st.ServeTicks + 29) / 30
		r.Text(ScreenWidth/2-10, ScreenHeight/2-20, strconv.Itoa(countdown))
	} else if s.BallValid() {
		x, y := s.Ball()
		r.FillCircle(x/game.FieldWidth*ScreenWidth, y/game.FieldHeight*ScreenHeight, ballPx)
	}

	if label := inputLabel(s.LastInput()); label != "" {
		r.Text(10, ScreenHeight-30, "last input: "+label)
	}
}

func inputLabel(cmd game.Command) string {
	switch cmd {
	case game.CommandUp:
		return protocol.InputUp
	case game.CommandDown:
		return protocol.InputDown
	case game.CommandIdle:
		return protocol.InputIdle
	}
	return ""
}
