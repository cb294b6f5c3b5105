package config

import (
	"github.com/mixdeck/scenectl/internal/console"
	"github.com/mixdeck/scenectl/internal/fader"
)

// Curve builds the runtime fader curve from the configured anchor table,
// or the built-in calibration when the config defines none.
func (c Config) Curve() (*fader.Curve, error) {
	if len(c.Fader.Anchors) == 0 {
		return fader.DefaultCurve(), nil
	}
	anchors := make([]fader.Anchor, 0, len(c.Fader.Anchors))
	for _, a := range c.Fader.Anchors {
		anchors = append(anchors, fader.Anchor{DB: a.DB, Norm: a.Norm})
	}
	return fader.NewCurve(anchors, c.Fader.FloorDB, c.Fader.CeilingDB)
}

// Console maps the relevant settings onto the transport config.
func (c Config) Console() console.Config {
	return console.Config{
		Addr:         c.ConsoleAddr,
		ProbeTimeout: c.ProbeTimeout,
		ReadTimeout:  c.ReadTimeout,
		SendGap:      c.SendGap,
		QueueSize:    c.QueueSize,
	}
}
