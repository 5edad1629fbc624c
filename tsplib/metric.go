// Package tsplib — coordinate-to-distance projections.
//
// The six supported metrics follow TSPLIB95 bit-for-bit: identical rounding
// (nint versus ceiling), the ATT pseudo-Euclidean cusp, and the GEO
// great-circle formula with TSPLIB's deg.min coordinate convention.
// Every metric is a pure function (Point, Point) → non-negative Distance
// and is safe for concurrent use by the parallel matrix builder.
package tsplib

import (
	"math"

	"github.com/katalvlaran/heldkarp/core"
)

// Point is a 2D node coordinate as read from NODE_COORD_SECTION.
type Point struct {
	X, Y float64
}

// GeoPoint is a node position in geographical latitude/longitude radians.
type GeoPoint struct {
	Lat, Lon float64
}

// earthRadius is the TSPLIB95 idealised Earth radius (km).
const earthRadius = 6378.388

// nint is the nearest-integer function of TSPLIB95: ⌊x + 0.5⌋ for the
// non-negative inputs produced by the metrics.
func nint(x float64) core.Distance {
	return core.Distance(x + 0.5)
}

// EucDist2D is the EUC_2D metric: nint(√(Δx² + Δy²)).
func EucDist2D(p, q Point) core.Distance {
	var (
		dx = p.X - q.X
		dy = p.Y - q.Y
	)

	return nint(math.Sqrt(dx*dx + dy*dy))
}

// MaxDist2D is the MAX_2D metric: nint(max(|Δx|, |Δy|)).
func MaxDist2D(p, q Point) core.Distance {
	var (
		dx = math.Abs(p.X - q.X)
		dy = math.Abs(p.Y - q.Y)
	)

	return nint(math.Max(dx, dy))
}

// ManDist2D is the MAN_2D metric: nint(|Δx| + |Δy|).
func ManDist2D(p, q Point) core.Distance {
	return nint(math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y))
}

// CeilDist2D is the CEIL_2D metric: ⌈√(Δx² + Δy²)⌉.
func CeilDist2D(p, q Point) core.Distance {
	var (
		dx = p.X - q.X
		dy = p.Y - q.Y
	)

	return core.Distance(math.Ceil(math.Sqrt(dx*dx + dy*dy)))
}

// AttDist is the ATT pseudo-Euclidean metric:
// r = √((Δx² + Δy²)/10), t = nint(r), d = t+1 if t < r else t.
func AttDist(p, q Point) core.Distance {
	var (
		dx = p.X - q.X
		dy = p.Y - q.Y
		r  = math.Sqrt((dx*dx + dy*dy) / 10.0)
		t  = float64(nint(r))
	)
	if t < r {
		return core.Distance(t) + 1
	}

	return core.Distance(t)
}

// ToGeoPoint converts a deg.min coordinate pair (X latitude, Y longitude)
// into radians: π · (deg + 5·min/3) / 180, where deg = ⌊x⌋ and min is the
// fractional part. Negative coordinates keep TSPLIB's truncation toward
// zero for the degree part.
func ToGeoPoint(p Point) GeoPoint {
	return GeoPoint{Lat: degMinToRad(p.X), Lon: degMinToRad(p.Y)}
}

func degMinToRad(x float64) float64 {
	var (
		deg = math.Trunc(x)
		min = x - deg
	)

	return math.Pi * (deg + 5.0*min/3.0) / 180.0
}

// GeoDist is the GEO great-circle metric of TSPLIB95:
// d = ⌊R · acos(½·((1+q1)·q2 − (1−q1)·q3)) + 1⌋ with
// q1 = cos(Δlon), q2 = cos(Δlat), q3 = cos(lat_i + lat_j).
func GeoDist(a, b GeoPoint) core.Distance {
	var (
		q1 = math.Cos(a.Lon - b.Lon)
		q2 = math.Cos(a.Lat - b.Lat)
		q3 = math.Cos(a.Lat + b.Lat)
	)

	return core.Distance(earthRadius*math.Acos(0.5*((1.0+q1)*q2-(1.0-q1)*q3)) + 1.0)
}

// metricFor maps a supported EDGE_WEIGHT_TYPE to its point metric.
// GEO is handled separately (it needs the radian conversion pass).
func metricFor(t core.EdgeWeightType) (func(Point, Point) core.Distance, bool) {
	switch t {
	case core.WeightEuc2D:
		return EucDist2D, true
	case core.WeightMax2D:
		return MaxDist2D, true
	case core.WeightMan2D:
		return ManDist2D, true
	case core.WeightCeil2D:
		return CeilDist2D, true
	case core.WeightAtt:
		return AttDist, true
	default:
		return nil, false
	}
}
