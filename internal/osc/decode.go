package osc

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Decode parses a received datagram. It is total: for any input it returns
// either a valid message or a protocol error, and never reads past the end
// of data.
func Decode(data []byte) (Message, error) {
	address, rest, err := readPaddedString(data)
	if err != nil {
		return Message{}, err
	}
	if len(address) == 0 || address[0] != '/' {
		return Message{}, ErrBadAddress
	}

	tags, rest, err := readPaddedString(rest)
	if err != nil {
		return Message{}, err
	}
	if len(tags) == 0 || tags[0] != ',' {
		return Message{}, ErrMissingTagString
	}

	msg := Message{Address: address}
	if len(tags) > 1 {
		msg.Arguments = make([]Argument, 0, len(tags)-1)
	}
	for _, tag := range []byte(tags[1:]) {
		var arg Argument
		arg, rest, err = readArgument(tag, rest)
		if err != nil {
			return Message{}, err
		}
		msg.Arguments = append(msg.Arguments, arg)
	}
	return msg, nil
}

func readArgument(tag byte, data []byte) (Argument, []byte, error) {
	switch tag {
	case 'i':
		v, rest, err := readUint32(data)
		return Int(v), rest, err
	case 'f':
		v, rest, err := readUint32(data)
		return Float(math.Float32frombits(v)), rest, err
	case 's':
		s, rest, err := readPaddedString(data)
		return String(s), rest, err
	case 'b':
		return readBlob(data)
	case 'T':
		return Bool(true), data, nil
	case 'F':
		return Bool(false), data, nil
	default:
		return nil, nil, ErrUnknownTypeTag
	}
}

func readUint32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, ErrTruncated
	}
	return binary.BigEndian.Uint32(data[:4]), data[4:], nil
}

func readBlob(data []byte) (Argument, []byte, error) {
	size, rest, err := readUint32(data)
	if err != nil {
		return nil, nil, err
	}
	n := int32(size)
	if n < 0 {
		return nil, nil, ErrInvalidBlobSize
	}
	padded := int(n) + pad(int(n))
	if padded > len(rest) {
		return nil, nil, ErrTruncated
	}
	blob := make([]byte, n)
	copy(blob, rest[:n])
	return Blob(blob), rest[padded:], nil
}

// readPaddedString consumes a NUL-terminated string plus its padding to the
// next 4-byte boundary.
func readPaddedString(data []byte) (string, []byte, error) {
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		return "", nil, ErrTruncated
	}
	end := i + padTerminated(i)
	if end > len(data) {
		return "", nil, ErrTruncated
	}
	return string(data[:i]), data[end:], nil
}
