// Package osc owns the Open Sound Control 1.0 wire format used to talk to
// the console.
//
// Ownership boundary:
// - message and argument types (closed set: i, f, s, b, T/F)
// - byte-exact encode with 4-byte NUL padding
// - total decode: any input yields a message or a protocol error
package osc
