package osc

import "errors"

var (
	ErrBadAddress       = errors.New("osc: address must be non-empty and start with '/'")
	ErrTruncated        = errors.New("osc: truncated message")
	ErrMissingTagString = errors.New("osc: missing type tag string")
	ErrUnknownTypeTag   = errors.New("osc: unknown type tag")
	ErrInvalidBlobSize  = errors.New("osc: invalid blob size")
)
