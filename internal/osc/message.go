package osc

import (
	"encoding/binary"
	"math"
	"strings"
)

// Message is one OSC message: an address pattern plus typed arguments.
// Messages are built immediately before sending or immediately after
// receiving a datagram and are not mutated afterwards.
type Message struct {
	Address   string
	Arguments []Argument
}

// Argument is one typed OSC argument. The set of implementations is closed:
// Int, Float, String, Blob and Bool. Booleans are carried entirely in the
// type tag and contribute no payload bytes.
type Argument interface {
	// tag returns the OSC type tag character for this argument.
	tag() byte
	// appendPayload appends the argument's payload bytes, if any.
	appendPayload(buf []byte) []byte
}

type (
	Int    int32
	Float  float32
	String string
	Blob   []byte
	Bool   bool
)

func (Int) tag() byte    { return 'i' }
func (Float) tag() byte  { return 'f' }
func (String) tag() byte { return 's' }
func (Blob) tag() byte   { return 'b' }

func (b Bool) tag() byte {
	if b {
		return 'T'
	}
	return 'F'
}

func (v Int) appendPayload(buf []byte) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(v))
}

func (v Float) appendPayload(buf []byte) []byte {
	return binary.BigEndian.AppendUint32(buf, math.Float32bits(float32(v)))
}

func (v String) appendPayload(buf []byte) []byte {
	return appendPadded(buf, []byte(v))
}

func (v Blob) appendPayload(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(v)))
	buf = append(buf, v...)
	for i := 0; i < pad(len(v)); i++ {
		buf = append(buf, 0)
	}
	return buf
}

func (Bool) appendPayload(buf []byte) []byte { return buf }

// TagString returns the message's type tag string, comma included.
func (m Message) TagString() string {
	var sb strings.Builder
	sb.WriteByte(',')
	for _, arg := range m.Arguments {
		sb.WriteByte(arg.tag())
	}
	return sb.String()
}

// pad returns how many NUL bytes follow n payload bytes to reach the next
// 4-byte boundary. Strings use padTerminated instead, which always emits at
// least one NUL.
func pad(n int) int {
	return (4 - n%4) % 4
}

func padTerminated(n int) int {
	return 4 - n%4
}

func appendPadded(buf, s []byte) []byte {
	buf = append(buf, s...)
	for i := 0; i < padTerminated(len(s)); i++ {
		buf = append(buf, 0)
	}
	return buf
}
