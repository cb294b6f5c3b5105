package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdempotent(t *testing.T) {
	snap, _ := Parse(`
/ch/01/mix ON -6.0
/bus/02/mix OFF 0.0
/ch/01/config/name "Kick"
`)
	assert.Empty(t, Diff(snap, snap))
}

func TestDiffSingleChange(t *testing.T) {
	prev, _ := Parse("/ch/01/mix OFF +0.0\n")
	next, _ := Parse("/ch/01/mix ON +0.0\n")

	changes := Diff(prev, next)
	require.Len(t, changes, 1)
	assert.Equal(t, Key{KindChannel, 1, ParamOn}, changes[0].Key)
	assert.Equal(t, On(false), changes[0].Prev)
	assert.Equal(t, On(true), changes[0].Next)
}

func TestDiffNewKeyHasNilPrev(t *testing.T) {
	next := Snapshot{{KindBus, 3, ParamFader}: FaderDB(-4.0)}
	changes := Diff(Snapshot{}, next)

	require.Len(t, changes, 1)
	assert.Nil(t, changes[0].Prev)
	assert.Equal(t, FaderDB(-4.0), changes[0].Next)
}

func TestDiffNeverReportsRemovals(t *testing.T) {
	prev := Snapshot{
		{KindChannel, 1, ParamOn}:    On(true),
		{KindChannel, 2, ParamFader}: FaderDB(-3.0),
	}
	next := Snapshot{
		{KindChannel, 1, ParamOn}: On(true),
	}
	assert.Empty(t, Diff(prev, next))
}

func TestDiffOrderingDeterministic(t *testing.T) {
	next := Snapshot{
		{KindMain, 0, ParamFader}:    FaderDB(0),
		{KindBus, 2, ParamOn}:        On(true),
		{KindChannel, 9, ParamName}:  Name("OH L"),
		{KindChannel, 9, ParamOn}:    On(false),
		{KindChannel, 9, ParamFader}: FaderDB(-20),
		{KindChannel, 9, ParamPan}:   Pan(-1),
		{KindChannel, 1, ParamFader}: FaderDB(-10),
	}

	want := []Key{
		{KindChannel, 1, ParamFader},
		{KindChannel, 9, ParamOn},
		{KindChannel, 9, ParamFader},
		{KindChannel, 9, ParamPan},
		{KindChannel, 9, ParamName},
		{KindBus, 2, ParamOn},
		{KindMain, 0, ParamFader},
	}
	for run := 0; run < 10; run++ {
		changes := Diff(Snapshot{}, next)
		require.Len(t, changes, len(want))
		for i, ch := range changes {
			assert.Equal(t, want[i], ch.Key, "position %d", i)
		}
	}
}
