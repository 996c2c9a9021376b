package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decred/slog"
	"golang.org/x/sync/errgroup"

	"github.com/semiguerra/lwip-pong/config"
	"github.com/semiguerra/lwip-pong/match"
	"github.com/semiguerra/lwip-pong/spectate"
)

func main() {
	backend := slog.NewBackend(os.Stdout)
	log := backend.Logger("PONG")

	cfg := config.Load(log)
	if lvl, ok := slog.LevelFromString(cfg.LogLevel); ok {
		log.SetLevel(lvl)
	} else {
		log.Warnf("unknown log level %q, staying at info", cfg.LogLevel)
	}

	if err := run(cfg, backend, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, backend *slog.Backend, log slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}
	defer ln.Close()

	mc := match.Config{
		Listener: ln.(*net.TCPListener),
		Log:      backend.Logger("MTCH"),
		Seed:     cfg.Seed,
	}

	var hub *spectate.Hub
	if cfg.SpectateAddr != "" {
		hub = spectate.NewHub(backend.Logger("SPEC"))
		mc.Publisher = hub
	}

	m := match.New(mc)
	log.Infof("match %s waiting for players on %s", m.ID, ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.Run(gctx)
	})

	if hub != nil {
		srv := &http.Server{
			Addr:    cfg.SpectateAddr,
			Handler: spectate.Routes(hub, m),
		}
		g.Go(func() error {
			log.Infof("spectator feed on http://%s/watch", cfg.SpectateAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			srv.Shutdown(sctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Infof("shut down")
	return nil
}
