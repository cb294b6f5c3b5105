package osc

// Encode serializes msg to its datagram form. The address and type tag
// string are NUL-padded to 4-byte boundaries with at least one terminating
// NUL each; arguments follow in declared order.
func Encode(msg Message) ([]byte, error) {
	if len(msg.Address) == 0 || msg.Address[0] != '/' {
		return nil, ErrBadAddress
	}

	buf := appendPadded(nil, []byte(msg.Address))
	buf = appendPadded(buf, []byte(msg.TagString()))
	for _, arg := range msg.Arguments {
		buf = arg.appendPayload(buf)
	}
	return buf, nil
}
