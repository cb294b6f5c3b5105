// Package scene turns console scene-file text into parameter snapshots and
// computes the minimal change set between two snapshots.
//
// Ownership boundary:
// - snapshot keys and typed parameter values
// - fail-soft line parser for the scene text format
// - snapshot diff with deterministic send ordering
package scene
