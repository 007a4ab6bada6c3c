package fabrik

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"
)

// defaultDirection is the direction substituted when a normalization hits a
// zero vector, i.e. two consecutive joints coincide exactly. A fixed
// fallback keeps degenerate sweeps reproducible.
var defaultDirection = r2.Point{X: 1, Y: 0}

const zeroVectorTol = 1e-12

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// unitOr returns the unit vector of v, or fallback when v is numerically zero.
func unitOr(v, fallback r2.Point) r2.Point {
	norm := v.Norm()
	if scalar.EqualWithinAbs(norm, 0, zeroVectorTol) {
		return fallback
	}
	return v.Mul(1 / norm)
}
