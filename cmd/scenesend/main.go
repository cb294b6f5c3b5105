// scenesend pushes a whole scene file to the console in one pass, or sends
// a single hand-written OSC message for calibration and trial work.
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mixdeck/scenectl/internal/config"
	"github.com/mixdeck/scenectl/internal/console"
	"github.com/mixdeck/scenectl/internal/observability"
	"github.com/mixdeck/scenectl/internal/osc"
	"github.com/mixdeck/scenectl/internal/scene"
)

func main() {
	fs := flag.NewFlagSet("scenesend", flag.ExitOnError)
	configPath := fs.String("config", "scenectl.toml", "path to the TOML config file")
	scenePath := fs.String("scene", "", "scene file to push (default: config scene_path)")
	sendAddr := fs.String("send", "", "send one message to this OSC address instead of a scene file")
	intArg := fs.String("i", "", "int32 argument for -send")
	floatArg := fs.String("f", "", "float32 argument for -send")
	strArg := fs.String("s", "", "string argument for -send")
	_ = fs.Parse(os.Args[1:])

	log := observability.InitLogger("scenesend")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	sess, err := console.Dial(cfg.Console(), log)
	if err != nil && !errors.Is(err, console.ErrLivenessTimeout) {
		log.Fatal().Err(err).Msg("dial console")
	}
	if err != nil {
		log.Warn().Msg("console silent; sending anyway")
	}
	defer sess.Close()

	if *sendAddr != "" {
		sendDirect(log, sess, *sendAddr, *intArg, *floatArg, *strArg)
		return
	}

	path := cfg.ScenePath
	if *scenePath != "" {
		path = *scenePath
	}
	pushScene(log, sess, cfg, path)
}

// sendDirect builds one message from the flag arguments, in flag order
// int, float, string, and fires it.
func sendDirect(log zerolog.Logger, sess *console.Session, address, intArg, floatArg, strArg string) {
	var args []osc.Argument
	if intArg != "" {
		v, err := strconv.ParseInt(intArg, 10, 32)
		if err != nil {
			log.Fatal().Err(err).Msg("parse -i")
		}
		args = append(args, osc.Int(v))
	}
	if floatArg != "" {
		v, err := strconv.ParseFloat(floatArg, 32)
		if err != nil {
			log.Fatal().Err(err).Msg("parse -f")
		}
		args = append(args, osc.Float(v))
	}
	if strArg != "" {
		args = append(args, osc.String(strArg))
	}

	if err := sess.Send(osc.Message{Address: address, Arguments: args}); err != nil {
		log.Fatal().Err(err).Str("address", address).Msg("send failed")
	}
	log.Info().Str("address", address).Int("args", len(args)).Msg("sent")
}

// pushScene sends every parameter the file names, not just a delta: the
// diff against an empty snapshot is the whole snapshot.
func pushScene(log zerolog.Logger, sess *console.Session, cfg config.Config, path string) {
	curve, err := cfg.Curve()
	if err != nil {
		log.Fatal().Err(err).Msg("build fader curve")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("read scene file")
	}

	snap, warnings := scene.Parse(string(data))
	for _, warn := range warnings {
		log.Warn().Str("warning", warn.String()).Msg("scene field skipped")
	}
	if len(snap) == 0 {
		log.Fatal().Str("scene", path).Msg("no recognized parameters in scene file")
	}

	changes := scene.Diff(scene.Snapshot{}, snap)
	report := sess.Apply(changes, curve)
	log.Info().
		Str("scene", path).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Msg("scene pushed")
	if report.Sent == 0 {
		os.Exit(1)
	}
}
