package console

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/mixdeck/scenectl/internal/fader"
	"github.com/mixdeck/scenectl/internal/observability"
	"github.com/mixdeck/scenectl/internal/osc"
	"github.com/mixdeck/scenectl/internal/scene"
)

var ErrUnroutable = errors.New("console: no route for parameter change")

// paramPath maps a parameter to its address suffix under the entity base.
var paramPath = map[scene.Param]string{
	scene.ParamOn:    "/mix/on",
	scene.ParamFader: "/mix/fader",
	scene.ParamPan:   "/mix/pan",
	scene.ParamName:  "/config/name",
}

// Result is the outcome of sending one parameter change.
type Result struct {
	Change  scene.Change
	Address string
	Err     error
}

// Report aggregates one apply pass over a change list.
type Report struct {
	Sent    int
	Failed  int
	Results []Result
}

// Apply routes each change to its console address and sends it. Sends are
// independent: one failure is recorded and the batch continues, with no
// retries. An unreachable session fails the whole batch up front without
// touching the socket.
func (s *Session) Apply(changes []scene.Change, curve *fader.Curve) Report {
	report := Report{Results: make([]Result, 0, len(changes))}

	if !s.Reachable() {
		for _, change := range changes {
			report.Failed++
			report.Results = append(report.Results, Result{Change: change, Err: ErrLivenessTimeout})
			observability.RecordSend(change.Key.Kind.String(), change.Key.Param.String(), false)
		}
		s.log.Warn().Int("changes", len(changes)).Msg("console unreachable, batch not sent")
		return report
	}

	for i, change := range changes {
		if i > 0 && s.cfg.SendGap > 0 {
			time.Sleep(s.cfg.SendGap)
		}
		msg, err := RouteChange(change, curve)
		if err == nil {
			err = s.Send(msg)
		}

		result := Result{Change: change, Address: msg.Address, Err: err}
		report.Results = append(report.Results, result)
		observability.RecordSend(change.Key.Kind.String(), change.Key.Param.String(), err == nil)
		if err != nil {
			report.Failed++
			s.log.Error().Err(err).Str("key", change.Key.String()).Msg("send failed")
			continue
		}
		report.Sent++
		s.log.Info().
			Str("address", msg.Address).
			Interface("value", change.Next).
			Msg("parameter sent")
	}
	return report
}

// RouteChange builds the wire message for one parameter change: the "on"
// switch goes out as an integer 1/0, fader decibels pass through the curve
// to the console's normalized range, pan and name are sent as-is.
func RouteChange(change scene.Change, curve *fader.Curve) (osc.Message, error) {
	base, err := entityBase(change.Key)
	if err != nil {
		return osc.Message{}, err
	}
	address := base + paramPath[change.Key.Param]

	var arg osc.Argument
	switch v := change.Next.(type) {
	case scene.On:
		var n osc.Int
		if v {
			n = 1
		}
		arg = n
	case scene.FaderDB:
		arg = osc.Float(curve.ToNormalized(float64(v)))
	case scene.Pan:
		arg = osc.Float(v)
	case scene.Name:
		arg = osc.String(v)
	default:
		return osc.Message{}, errors.Wrapf(ErrUnroutable, "key %s", change.Key)
	}

	if expected := paramForValue(change.Next); expected != change.Key.Param {
		return osc.Message{}, errors.Wrapf(ErrUnroutable, "key %s carries a %s value", change.Key, expected)
	}
	return osc.Message{Address: address, Arguments: []osc.Argument{arg}}, nil
}

func entityBase(key scene.Key) (string, error) {
	switch key.Kind {
	case scene.KindChannel:
		return fmt.Sprintf("/ch/%02d", key.Number), nil
	case scene.KindBus:
		return fmt.Sprintf("/bus/%02d", key.Number), nil
	case scene.KindMain:
		return "/main/st", nil
	default:
		return "", errors.Wrapf(ErrUnroutable, "kind %s", key.Kind)
	}
}

func paramForValue(v scene.Value) scene.Param {
	switch v.(type) {
	case scene.On:
		return scene.ParamOn
	case scene.FaderDB:
		return scene.ParamFader
	case scene.Pan:
		return scene.ParamPan
	default:
		return scene.ParamName
	}
}
