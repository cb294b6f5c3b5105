package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAllArgumentTypes(t *testing.T) {
	msg := Message{
		Address: "/ch/01/config/name",
		Arguments: []Argument{
			Int(-42),
			Float(0.5),
			String("Lead Vox"),
			Blob{0x01, 0x02, 0x03},
			Bool(true),
			Bool(false),
		},
	}

	data, err := Encode(msg)
	require.NoError(t, err)
	require.Zero(t, len(data)%4, "datagram must be 32-bit aligned")

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, msg.Address, decoded.Address)
	assert.Equal(t, msg.Arguments, decoded.Arguments)
}

func TestEncodeFaderMessageBytes(t *testing.T) {
	data, err := Encode(Message{
		Address:   "/ch/01/mix/fader",
		Arguments: []Argument{Float(0.75)},
	})
	require.NoError(t, err)

	want := []byte{
		'/', 'c', 'h', '/', '0', '1', '/', 'm', 'i', 'x', '/', 'f', 'a', 'd', 'e', 'r',
		0, 0, 0, 0,
		',', 'f', 0, 0,
		0x3f, 0x40, 0x00, 0x00, // 0.75 big-endian IEEE 754
	}
	assert.Equal(t, want, data)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "/ch/01/mix/fader", decoded.Address)
	require.Len(t, decoded.Arguments, 1)
	assert.Equal(t, Float(0.75), decoded.Arguments[0])
}

func TestEncodeZeroArgumentsStillCarriesTagString(t *testing.T) {
	data, err := Encode(Message{Address: "/xinfo"})
	require.NoError(t, err)
	assert.Equal(t, []byte{'/', 'x', 'i', 'n', 'f', 'o', 0, 0, ',', 0, 0, 0}, data)
}

func TestEncodeAlignedAddressGetsFullPaddingWord(t *testing.T) {
	// A 4-byte address still needs a NUL terminator, so a whole extra
	// padding word is emitted.
	data, err := Encode(Message{Address: "/abc"})
	require.NoError(t, err)
	assert.Equal(t, []byte{'/', 'a', 'b', 'c', 0, 0, 0, 0, ',', 0, 0, 0}, data)
}

func TestEncodeRejectsBadAddress(t *testing.T) {
	for _, addr := range []string{"", "ch/01/mix/on"} {
		_, err := Encode(Message{Address: addr})
		assert.ErrorIs(t, err, ErrBadAddress, "address %q", addr)
	}
}

func TestDecodeBoolPayloadFreeArguments(t *testing.T) {
	data, err := Encode(Message{
		Address:   "/ch/01/mix/on",
		Arguments: []Argument{Bool(true)},
	})
	require.NoError(t, err)

	// Address (16) + tag string (",T" padded to 4): booleans add nothing.
	assert.Len(t, data, 20)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []Argument{Bool(true)}, decoded.Arguments)
}

func TestDecodeTotalOnTruncatedInput(t *testing.T) {
	full, err := Encode(Message{
		Address:   "/bus/07/mix/fader",
		Arguments: []Argument{Float(0.25), String("aux"), Blob{0xde, 0xad}},
	})
	require.NoError(t, err)

	for n := 0; n < len(full); n++ {
		_, err := Decode(full[:n])
		assert.Error(t, err, "truncation at %d bytes must not decode", n)
	}
}

func TestDecodeGarbageInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":                {},
		"no nul terminator":    {'/', 'a', 'b', 'c'},
		"missing tag string":   {'/', 'a', 0, 0},
		"tag without comma":    {'/', 'a', 0, 0, 'f', 0, 0, 0},
		"unknown type tag":     {'/', 'a', 0, 0, ',', 'q', 0, 0, 1, 2, 3, 4},
		"int payload missing":  {'/', 'a', 0, 0, ',', 'i', 0, 0},
		"negative blob size":   {'/', 'a', 0, 0, ',', 'b', 0, 0, 0xff, 0xff, 0xff, 0xff},
		"blob size past end":   {'/', 'a', 0, 0, ',', 'b', 0, 0, 0x00, 0x00, 0x00, 0x10, 1, 2},
		"not an address":       {'a', 'b', 'c', 0},
		"all zeros":            make([]byte, 16),
	}
	for name, data := range cases {
		_, err := Decode(data)
		assert.Error(t, err, name)
	}
}

func TestDecodeStringPaddingConsumed(t *testing.T) {
	data, err := Encode(Message{
		Address:   "/bus/01/config/name",
		Arguments: []Argument{String("FOH"), Int(7)},
	})
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []Argument{String("FOH"), Int(7)}, decoded.Arguments)
}
