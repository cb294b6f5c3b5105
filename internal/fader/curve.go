// Package fader maps human decibel values onto the console's normalized
// fader range. The console's fader law is empirically measured, not a
// documented formula, so the mapping is data: an ordered anchor table that
// configuration can replace without code changes.
package fader

import "errors"

var (
	ErrNoAnchors           = errors.New("fader: curve needs at least two anchors")
	ErrAnchorsNotAscending = errors.New("fader: anchors must ascend in both decibel and normalized value")
	ErrBoundsInverted      = errors.New("fader: floor must be below ceiling")
)

// Anchor is one measured calibration point: the decibel value a human
// writes in a scene file and the normalized value the console needs to
// land there.
type Anchor struct {
	DB   float64
	Norm float64
}

// Curve is a piecewise-linear decibel-to-normalized mapping. Values at or
// below FloorDB map to 0, at or above CeilingDB map to 1. Between anchors
// the curve interpolates; outside the anchor span but inside the bounds it
// extrapolates along the nearest segment.
type Curve struct {
	anchors []Anchor
	floorDB float64
	ceilDB  float64
}

// NewCurve validates the anchor table and bounds. Anchors must strictly
// ascend in both coordinates so the mapping is monotonic and invertible.
func NewCurve(anchors []Anchor, floorDB, ceilingDB float64) (*Curve, error) {
	if len(anchors) < 2 {
		return nil, ErrNoAnchors
	}
	for i := 1; i < len(anchors); i++ {
		if anchors[i].DB <= anchors[i-1].DB || anchors[i].Norm <= anchors[i-1].Norm {
			return nil, ErrAnchorsNotAscending
		}
	}
	if floorDB >= ceilingDB {
		return nil, ErrBoundsInverted
	}
	own := make([]Anchor, len(anchors))
	copy(own, anchors)
	return &Curve{anchors: own, floorDB: floorDB, ceilDB: ceilingDB}, nil
}

// DefaultCurve returns the agreed calibration table for the console fader
// law: unity gain sits at 0.75 and each segment below it doubles in slope.
func DefaultCurve() *Curve {
	c, err := NewCurve([]Anchor{
		{DB: -90, Norm: 0},
		{DB: -60, Norm: 0.0625},
		{DB: -30, Norm: 0.25},
		{DB: -10, Norm: 0.5},
		{DB: 0, Norm: 0.75},
		{DB: 10, Norm: 1},
	}, -90, 10)
	if err != nil {
		panic(err)
	}
	return c
}

// ToNormalized maps a decibel value into [0, 1].
func (c *Curve) ToNormalized(db float64) float64 {
	if db <= c.floorDB {
		return 0
	}
	if db >= c.ceilDB {
		return 1
	}
	lo, hi := c.segmentForDB(db)
	norm := lo.Norm + (db-lo.DB)*(hi.Norm-lo.Norm)/(hi.DB-lo.DB)
	return clamp01(norm)
}

// ToDecibel is the inverse mapping, used for diagnostics and read-back.
func (c *Curve) ToDecibel(norm float64) float64 {
	if norm <= 0 {
		return c.floorDB
	}
	if norm >= 1 {
		return c.ceilDB
	}
	lo, hi := c.segmentForNorm(norm)
	db := lo.DB + (norm-lo.Norm)*(hi.DB-lo.DB)/(hi.Norm-lo.Norm)
	if db < c.floorDB {
		return c.floorDB
	}
	if db > c.ceilDB {
		return c.ceilDB
	}
	return db
}

// FloorDB reports the decibel value that pins the fader to 0.
func (c *Curve) FloorDB() float64 { return c.floorDB }

// CeilingDB reports the decibel value that pins the fader to 1.
func (c *Curve) CeilingDB() float64 { return c.ceilDB }

// segmentForDB picks the anchor pair bracketing db, or the nearest segment
// when db lies outside the anchor span.
func (c *Curve) segmentForDB(db float64) (Anchor, Anchor) {
	for i := 1; i < len(c.anchors)-1; i++ {
		if db < c.anchors[i].DB {
			return c.anchors[i-1], c.anchors[i]
		}
	}
	n := len(c.anchors)
	return c.anchors[n-2], c.anchors[n-1]
}

func (c *Curve) segmentForNorm(norm float64) (Anchor, Anchor) {
	for i := 1; i < len(c.anchors)-1; i++ {
		if norm < c.anchors[i].Norm {
			return c.anchors[i-1], c.anchors[i]
		}
	}
	n := len(c.anchors)
	return c.anchors[n-2], c.anchors[n-1]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
