package client

import (
	"testing"
	"time"

	"github.com/decred/slog"

	"github.com/semiguerra/lwip-pong/game"
)

type fakeRenderer struct {
	rects   int
	circles [][3]float64
	texts   []string
}

func (f *fakeRenderer) FillRect(x, y, w, h float64) {
	f.rects++
}

func (f *fakeRenderer) FillCircle(x, y, r float64) {
	f.circles = append(f.circles, [3]float64{x, y, r})
}

func (f *fakeRenderer) Text(x, y int, s string) {
	f.texts = append(f.texts, s)
}

func (f *fakeRenderer) hasText(want string) bool {
	for _, s := range f.texts {
		if s == want {
			return true
		}
	}
	return false
}

func drawSession() *Session {
	return newSession(nil, 1, slog.Disabled)
}

func TestDrawHidesBallDuringCountdown(t *testing.T) {
	s := drawSession()
	s.state = State{P1Y: 10, P2Y: 10, ServeTicks: 180}
	s.ball.Observe(40, 12, 0.5, 0.1, time.Now())

	f := &fakeRenderer{}
	Draw(f, s)

	if len(f.circles) != 0 {
		t.Fatalf("ball drawn during countdown: %v", f.circles)
	}
	if !f.hasText("6") {
		t.Fatalf("countdown missing, texts = %v", f.texts)
	}
}

func TestDrawBallOnceServeIsOver(t *testing.T) {
	s := drawSession()
	s.state = State{P1Y: 10, P2Y: 10, ServeTicks: 0}
	s.ball.Observe(40, 12, 0.5, 0.1, time.Now())

	f := &fakeRenderer{}
	Draw(f, s)

	if len(f.circles) != 1 {
		t.Fatalf("ball circles = %d, want 1", len(f.circles))
	}
	got := f.circles[0]
	if got[0] != 400 || got[1] != 300 {
		t.Fatalf("ball at (%f,%f), want field center (400,300)", got[0], got[1])
	}
}

func TestDrawSkipsBallBeforeFirstSnapshot(t *testing.T) {
	s := drawSession()

	f := &fakeRenderer{}
	Draw(f, s)

	if len(f.circles) != 0 {
		t.Fatalf("unseeded ball drawn: %v", f.circles)
	}
}

func TestDrawShowsScoresAndLastInput(t *testing.T) {
	s := drawSession()
	s.state = State{Score1: 3, Score2: 7}
	s.lastInput = game.CommandUp

	f := &fakeRenderer{}
	Draw(f, s)

	if !f.hasText("3") || !f.hasText("7") {
		t.Fatalf("scores missing, texts = %v", f.texts)
	}
	if !f.hasText("last input: UP") {
		t.Fatalf("input label missing, texts = %v", f.texts)
	}
}
