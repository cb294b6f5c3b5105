// Package watch runs the long-lived pipeline: poll the scene file, parse
// on change, diff against the retained snapshot, and hand the delta to the
// console session.
package watch

import (
	"context"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mixdeck/scenectl/internal/console"
	"github.com/mixdeck/scenectl/internal/fader"
	"github.com/mixdeck/scenectl/internal/observability"
	"github.com/mixdeck/scenectl/internal/scene"
)

// Console is the slice of the session the watch loop needs. The loop is
// the session's single writer: only one apply pass is ever in flight.
type Console interface {
	Apply(changes []scene.Change, curve *fader.Curve) console.Report
	Probe() error
	Reachable() bool
}

// Config times the watch loop. Content changes are detected by polling
// plus hash comparison, which never reacts to editor temp or swap files
// because only the exact configured path is ever read.
type Config struct {
	Path string
	// PollInterval is how often the file content is re-hashed.
	PollInterval time.Duration
	// Debounce is the quiet period a burst of saves must settle for
	// before a pass runs.
	Debounce time.Duration
}

// PassReport is the plain-data outcome of one apply pass, for whatever
// front-end is driving the loop.
type PassReport struct {
	PassID   string
	Changes  int
	Sent     int
	Failed   int
	Warnings []scene.Warning
	Duration time.Duration
}

// Watcher owns the retained previous snapshot.
type Watcher struct {
	cfg     Config
	console Console
	curve   *fader.Curve
	log     zerolog.Logger
	sink    func(PassReport)

	prev     scene.Snapshot
	lastHash uint64
}

// New builds a watcher. sink may be nil.
func New(cfg Config, cons Console, curve *fader.Curve, log zerolog.Logger, sink func(PassReport)) *Watcher {
	if sink == nil {
		sink = func(PassReport) {}
	}
	return &Watcher{
		cfg:     cfg,
		console: cons,
		curve:   curve,
		log:     log.With().Str("scene", cfg.Path).Logger(),
		sink:    sink,
	}
}

// Run blocks until ctx is cancelled. The current file content becomes the
// baseline snapshot; later content changes are parsed, diffed and applied.
// No failure after startup stops the loop.
func (w *Watcher) Run(ctx context.Context) error {
	data, err := os.ReadFile(w.cfg.Path)
	if err != nil {
		return errors.Wrap(err, "read scene baseline")
	}
	w.lastHash = xxhash.Sum64(data)

	snap, warnings := scene.Parse(string(data))
	w.logWarnings(warnings)
	w.prev = snap
	w.log.Info().Int("parameters", len(snap)).Msg("baseline snapshot loaded")

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	var pending bool
	var changedAt time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		data, err := os.ReadFile(w.cfg.Path)
		if err != nil {
			// Editors replace files non-atomically; try again next tick.
			w.log.Debug().Err(err).Msg("scene file unreadable, will retry")
			continue
		}
		hash := xxhash.Sum64(data)
		if hash != w.lastHash {
			w.lastHash = hash
			pending = true
			changedAt = time.Now()
			continue
		}
		if pending && time.Since(changedAt) >= w.cfg.Debounce {
			pending = false
			w.pass(string(data))
		}
	}
}

// pass runs one parse/diff/apply cycle. The retained snapshot is replaced
// unconditionally, success or not, so an unreachable console never causes
// the same delta to be resent on every later tick.
func (w *Watcher) pass(text string) {
	start := time.Now()
	passID := uuid.NewString()

	snap, warnings := scene.Parse(text)
	w.logWarnings(warnings)
	observability.RecordParseWarnings(len(warnings))

	changes := scene.Diff(w.prev, snap)
	w.prev = snap

	if len(changes) == 0 {
		w.log.Debug().Str("pass", passID).Msg("content changed but no parameters did")
		observability.RecordApplyPass("empty", time.Since(start))
		w.sink(PassReport{PassID: passID, Warnings: warnings, Duration: time.Since(start)})
		return
	}

	if !w.console.Reachable() {
		if err := w.console.Probe(); err != nil {
			w.log.Warn().Err(err).Str("pass", passID).Msg("console still unreachable")
		}
	}

	report := w.console.Apply(changes, w.curve)
	duration := time.Since(start)
	observability.RecordApplyPass(outcome(report), duration)
	w.log.Info().
		Str("pass", passID).
		Int("changes", len(changes)).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Dur("took", duration).
		Msg("apply pass finished")

	w.sink(PassReport{
		PassID:   passID,
		Changes:  len(changes),
		Sent:     report.Sent,
		Failed:   report.Failed,
		Warnings: warnings,
		Duration: duration,
	})
}

func (w *Watcher) logWarnings(warnings []scene.Warning) {
	for _, warn := range warnings {
		w.log.Warn().Str("warning", warn.String()).Msg("scene field skipped")
	}
}

func outcome(r console.Report) string {
	switch {
	case r.Failed == 0:
		return "clean"
	case r.Sent == 0:
		return "failed"
	default:
		return "partial"
	}
}
