package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixdeck/scenectl/internal/fader"
	"github.com/mixdeck/scenectl/internal/osc"
	"github.com/mixdeck/scenectl/internal/scene"
)

func TestRouteChange(t *testing.T) {
	curve := fader.DefaultCurve()

	cases := []struct {
		name    string
		key     scene.Key
		value   scene.Value
		address string
		arg     osc.Argument
	}{
		{
			name:    "channel on",
			key:     scene.Key{Kind: scene.KindChannel, Number: 1, Param: scene.ParamOn},
			value:   scene.On(true),
			address: "/ch/01/mix/on",
			arg:     osc.Int(1),
		},
		{
			name:    "channel muted",
			key:     scene.Key{Kind: scene.KindChannel, Number: 12, Param: scene.ParamOn},
			value:   scene.On(false),
			address: "/ch/12/mix/on",
			arg:     osc.Int(0),
		},
		{
			name:    "unity fader maps through the curve",
			key:     scene.Key{Kind: scene.KindChannel, Number: 3, Param: scene.ParamFader},
			value:   scene.FaderDB(0),
			address: "/ch/03/mix/fader",
			arg:     osc.Float(0.75),
		},
		{
			name:    "floor fader pins to zero",
			key:     scene.Key{Kind: scene.KindBus, Number: 2, Param: scene.ParamFader},
			value:   scene.FaderDB(-90),
			address: "/bus/02/mix/fader",
			arg:     osc.Float(0),
		},
		{
			name:    "pan passes through",
			key:     scene.Key{Kind: scene.KindChannel, Number: 5, Param: scene.ParamPan},
			value:   scene.Pan(-0.5),
			address: "/ch/05/mix/pan",
			arg:     osc.Float(-0.5),
		},
		{
			name:    "bus name",
			key:     scene.Key{Kind: scene.KindBus, Number: 7, Param: scene.ParamName},
			value:   scene.Name("Monitors"),
			address: "/bus/07/config/name",
			arg:     osc.String("Monitors"),
		},
		{
			name:    "main is unnumbered",
			key:     scene.Key{Kind: scene.KindMain, Number: 0, Param: scene.ParamFader},
			value:   scene.FaderDB(-10),
			address: "/main/st/mix/fader",
			arg:     osc.Float(0.5),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := RouteChange(scene.Change{Key: tc.key, Next: tc.value}, curve)
			require.NoError(t, err)
			assert.Equal(t, tc.address, msg.Address)
			require.Len(t, msg.Arguments, 1)
			assert.Equal(t, tc.arg, msg.Arguments[0])
		})
	}
}

func TestRouteChangeRejectsMismatchedValue(t *testing.T) {
	change := scene.Change{
		Key:  scene.Key{Kind: scene.KindChannel, Number: 1, Param: scene.ParamOn},
		Next: scene.Name("not a switch"),
	}
	_, err := RouteChange(change, fader.DefaultCurve())
	assert.ErrorIs(t, err, ErrUnroutable)
}
