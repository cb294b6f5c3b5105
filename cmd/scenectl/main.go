package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mixdeck/scenectl/internal/config"
	"github.com/mixdeck/scenectl/internal/console"
	"github.com/mixdeck/scenectl/internal/observability"
	"github.com/mixdeck/scenectl/internal/watch"
)

func main() {
	fs := flag.NewFlagSet("scenectl", flag.ExitOnError)
	configPath := fs.String("config", "scenectl.toml", "path to the TOML config file")
	writeConfig := fs.Bool("init", false, "write a starter config to -config and exit")
	_ = fs.Parse(os.Args[1:])

	log := observability.InitLogger("scenectl")

	if *writeConfig {
		if err := config.WriteTemplate(*configPath, false); err != nil {
			log.Fatal().Err(err).Msg("write config template")
		}
		log.Info().Str("path", *configPath).Msg("starter config written")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	curve, err := cfg.Curve()
	if err != nil {
		log.Fatal().Err(err).Msg("build fader curve")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := observability.ServeMetrics(cfg.MetricsAddr); err != nil {
				log.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()
	}

	sess, err := console.Dial(cfg.Console(), log)
	switch {
	case errors.Is(err, console.ErrLivenessTimeout):
		log.Warn().Str("console", cfg.ConsoleAddr).
			Msg("console silent, starting anyway; sends fail until it answers")
	case err != nil:
		log.Fatal().Err(err).Msg("dial console")
	default:
		log.Info().Str("console", cfg.ConsoleAddr).Msg("console reachable")
	}
	defer sess.Close()

	if err := sess.Remote(); err != nil {
		log.Warn().Err(err).Msg("remote subscribe failed")
	}
	go sess.Listen(ctx)
	go logInbound(ctx, sess, log)

	watcher := watch.New(watch.Config{
		Path:         cfg.ScenePath,
		PollInterval: cfg.PollInterval,
		Debounce:     cfg.Debounce,
	}, sess, curve, log, nil)

	log.Info().Str("scene", cfg.ScenePath).Msg("watching for scene changes")
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("watch loop stopped")
	}
}

// logInbound drains read-back traffic so the session's bounded queue keeps
// space for fresh messages.
func logInbound(ctx context.Context, sess *console.Session, log zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-sess.Inbound():
			log.Debug().Str("address", msg.Address).Int("args", len(msg.Arguments)).Msg("console message")
		}
	}
}
