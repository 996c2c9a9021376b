package predict

import (
	"time"

	"github.com/semiguerra/lwip-pong/protocol"
)

// Freshness bounds how long the last authoritative snapshot keeps
// feeding dead reckoning. Past it the ball freezes in place rather
// than extrapolate stale velocity.
const Freshness = time.Second

// Ball dead-reckons the server's ball between snapshots: the position
// advances along the last authoritative velocity and is overwritten
// wholesale whenever a new snapshot lands. There is no smoothing and
// no rollback.
type Ball struct {
	x, y      float64
	dx, dy    float64
	valid     bool
	updatedAt time.Time // last authoritative refresh
}

// Observe applies an authoritative snapshot: hard overwrite of both
// position and velocity.
func (b *Ball) Observe(x, y, dx, dy float64, now time.Time) {
	b.x, b.y = x, y
	b.dx, b.dy = dx, dy
	b.valid = true
	b.updatedAt = now
}

// Advance extrapolates one rendered frame of dt seconds. Velocity is
// field units per simulation tick, so dt scales by the tick rate.
// Nothing moves before the first snapshot, or once the snapshot on
// hand is older than Freshness.
func (b *Ball) Advance(dt float64, now time.Time) {
	if !b.valid || now.Sub(b.updatedAt) >= Freshness {
		return
	}
	b.x += b.dx * dt * protocol.TickRate
	b.y += b.dy * dt * protocol.TickRate
}

func (b *Ball) Position() (x, y float64) {
	return b.x, b.y
}

// Valid reports whether at least one snapshot has been observed.
func (b *Ball) Valid() bool {
	return b.valid
}
