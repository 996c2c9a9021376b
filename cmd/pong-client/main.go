package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/decred/slog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/semiguerra/lwip-pong/client"
	"github.com/semiguerra/lwip-pong/game"
	"github.com/semiguerra/lwip-pong/protocol"
)

// canvas adapts an ebiten frame to the view's renderer.
type canvas struct {
	screen *ebiten.Image
}

func (c *canvas) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), color.White, false)
}

func (c *canvas) FillCircle(x, y, r float64) {
	vector.DrawFilledCircle(c.screen, float32(x), float32(y), float32(r), color.White, false)
}

func (c *canvas) Text(x, y int, s string) {
	ebitenutil.DebugPrintAt(c.screen, s, x, y)
}

// keyboard maps held keys to a paddle command. Player 1 drives with
// W/S, player 2 with the arrow keys.
type keyboard struct {
	slot int
}

func (k keyboard) Direction() game.Command {
	up, down := ebiten.KeyArrowUp, ebiten.KeyArrowDown
	if k.slot == 1 {
		up, down = ebiten.KeyW, ebiten.KeyS
	}
	switch {
	case ebiten.IsKeyPressed(up):
		return game.CommandUp
	case ebiten.IsKeyPressed(down):
		return game.CommandDown
	}
	return game.CommandIdle
}

type app struct {
	session  *client.Session
	controls client.Controls
	last     time.Time
}

func (a *app) Update() error {
	now := time.Now()
	dt := now.Sub(a.last).Seconds()
	a.last = now
	a.session.Frame(a.controls.Direction(), dt, now)
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	client.Draw(&canvas{screen: screen}, a.session)
	if !a.session.Connected() {
		ebitenutil.DebugPrintAt(screen, "connection lost", client.ScreenWidth/2-50, client.ScreenHeight/2)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return client.ScreenWidth, client.ScreenHeight
}

func main() {
	addr := flag.String("addr", "127.0.0.1:12345", "server address")
	player := flag.Int("player", 1, "player slot to claim (1 or 2)")
	flag.Parse()

	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("CLNT")

	if *player != 1 && *player != 2 {
		fmt.Fprintln(os.Stderr, "player must be 1 or 2")
		flag.Usage()
		os.Exit(2)
	}

	session, err := client.Dial(*addr, *player, log)
	if err != nil {
		log.Errorf("connect to %s: %v", *addr, err)
		os.Exit(1)
	}
	defer session.Close()

	ebiten.SetWindowSize(client.ScreenWidth, client.ScreenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Pong - player %d", *player))
	ebiten.SetTPS(protocol.ClientFrameRate)

	if err := ebiten.RunGame(&app{session: session, controls: keyboard{slot: *player}, last: time.Now()}); err != nil {
		log.Errorf("game loop: %v", err)
		os.Exit(1)
	}
}
