// Package console owns the UDP session to the mixing console and the
// apply loop that pushes parameter changes over it.
//
// Ownership boundary:
// - session lifecycle: dial, liveness probe, close
// - inbound listener and its bounded queue
// - parameter-to-address routing and argument encoding
package console
