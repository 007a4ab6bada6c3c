package fabrik

import (
	"math"

	"github.com/golang/geo/r2"
)

// Segment is a single fixed-length link of a kinematic chain. Its joint is
// the link's distal endpoint and the only state the solver mutates; the
// length and the cumulative construction angle are fixed at creation.
type Segment struct {
	length float64
	angle  float64 // cumulative degrees, only used to seed the initial pose
	joint  r2.Point
}

func newSegment(ref r2.Point, length, cumulativeAngleDegrees float64) *Segment {
	rad := DegToRad(cumulativeAngleDegrees)
	return &Segment{
		length: length,
		angle:  cumulativeAngleDegrees,
		joint: r2.Point{
			X: ref.X + math.Cos(rad)*length,
			Y: ref.Y + math.Sin(rad)*length,
		},
	}
}

// Length returns the fixed length of the segment.
func (sg *Segment) Length() float64 {
	return sg.length
}

// Joint returns the current position of the segment's distal endpoint.
func (sg *Segment) Joint() r2.Point {
	return sg.joint
}
