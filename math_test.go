package fabrik

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestDegToRad(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi, 1e-12)
	test.That(t, DegToRad(-90), test.ShouldAlmostEqual, -math.Pi/2, 1e-12)
}

func TestUnitOr(t *testing.T) {
	u := unitOr(r2.Point{X: 3, Y: 4}, defaultDirection)
	test.That(t, u.X, test.ShouldAlmostEqual, 0.6, 1e-12)
	test.That(t, u.Y, test.ShouldAlmostEqual, 0.8, 1e-12)
	test.That(t, u.Norm(), test.ShouldAlmostEqual, 1, 1e-12)

	// Zero vectors fall back to the fixed direction instead of dividing
	// by zero.
	test.That(t, unitOr(r2.Point{}, defaultDirection), test.ShouldResemble, defaultDirection)
	fallback := r2.Point{X: 0, Y: -1}
	test.That(t, unitOr(r2.Point{}, fallback), test.ShouldResemble, fallback)
}
