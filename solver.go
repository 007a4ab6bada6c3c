package fabrik

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
)

const (
	// DefaultMarginOfError is the convergence threshold used when a chain
	// description does not specify one, in the same units as coordinates.
	DefaultMarginOfError = 0.01

	// defaultMaxIterations bounds the sweeps a single Solve call may run.
	defaultMaxIterations = 300

	// A sweep that shrinks the end effector's distance to the target by
	// less than this relative amount has hit a fixed point of the
	// relaxation, which happens when the chain is locked collinear with
	// the target.
	stallRelTol = 1e-12

	// Fraction of a segment's length by which its joint is kicked off a
	// collinear lock.
	unstickRatio = 0.1
)

// Solver2D solves planar inverse kinematics for a chain of fixed-length
// segments anchored to an immovable base point. It is not safe for
// concurrent use; each independently solved chain should own its own
// Solver2D.
type Solver2D struct {
	name          string
	base          r2.Point
	segments      []*Segment
	armLength     float64
	marginOfError float64
	maxIterations int
	logger        golog.Logger
}

// NewSolver2D returns a solver with an empty chain anchored at the given
// base point. marginOfError is the distance within which the end effector
// is considered to have reached a target and must be positive.
func NewSolver2D(baseX, baseY, marginOfError float64, logger golog.Logger) (*Solver2D, error) {
	if marginOfError <= 0 || math.IsNaN(marginOfError) {
		return nil, ErrBadMargin
	}
	return &Solver2D{
		base:          r2.Point{X: baseX, Y: baseY},
		marginOfError: marginOfError,
		maxIterations: defaultMaxIterations,
		logger:        logger,
	}, nil
}

// AddSegment appends a segment to the chain, anchored at the current last
// joint (or the base point for the first segment). relativeAngleDegrees is
// measured against the previous segment's construction angle and only
// determines the new segment's initial joint position. Appending after
// solving is allowed and extends the chain from its current pose.
func (s *Solver2D) AddSegment(length, relativeAngleDegrees float64) error {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return ErrBadSegmentLength
	}
	ref := s.base
	angle := relativeAngleDegrees
	if n := len(s.segments); n > 0 {
		last := s.segments[n-1]
		ref = last.joint
		angle += last.angle
	}
	s.segments = append(s.segments, newSegment(ref, length, angle))
	s.armLength += length
	return nil
}

// IsReachable reports whether the target lies strictly inside the disk of
// radius equal to the chain's total length centered on the base point.
func (s *Solver2D) IsReachable(x, y float64) bool {
	return r2.Point{X: x, Y: y}.Sub(s.base).Norm() < s.armLength
}

// InMarginOfError reports whether the end effector is within the margin of
// error of the target.
func (s *Solver2D) InMarginOfError(x, y float64) (bool, error) {
	if len(s.segments) == 0 {
		return false, ErrNoSegments
	}
	ee := s.segments[len(s.segments)-1].joint
	return r2.Point{X: x, Y: y}.Sub(ee).Norm() < s.marginOfError, nil
}

// Iterate runs one backward-then-forward relaxation sweep toward the
// target, mutating joint positions in place. Every segment length holds
// again once the sweep completes. Joints coinciding exactly get the fixed
// fallback direction rather than a zero division.
func (s *Solver2D) Iterate(x, y float64) {
	target := r2.Point{X: x, Y: y}
	n := len(s.segments)

	// Backward sweep, end effector to base. Each joint's new position
	// becomes the anchor for the next one closer to the base.
	for i := n - 1; i > 0; i-- {
		anchor := target
		if i != n-1 {
			anchor = s.segments[i].joint
		}
		dir := unitOr(s.segments[i-1].joint.Sub(anchor), defaultDirection)
		s.segments[i-1].joint = anchor.Add(dir.Mul(s.segments[i].length))
	}

	// Forward sweep, base to end effector. The first joint re-anchors to
	// the fixed base and the last is pulled straight toward the target.
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			dir := unitOr(s.segments[0].joint.Sub(s.base), defaultDirection)
			s.segments[0].joint = s.base.Add(dir.Mul(s.segments[0].length))
		case i == n-1:
			dir := unitOr(s.segments[i-1].joint.Sub(target), defaultDirection)
			s.segments[i].joint = s.segments[i-1].joint.Sub(dir.Mul(s.segments[i].length))
		default:
			dir := unitOr(s.segments[i].joint.Sub(s.segments[i-1].joint), defaultDirection)
			s.segments[i].joint = s.segments[i-1].joint.Add(dir.Mul(s.segments[i].length))
		}
	}
}

// Solve relaxes the chain toward the target until the end effector is
// within the margin of error. The returned boolean mirrors IsReachable
// exactly: false means the target is out of reach and no joint was moved.
// A reachable target that is still outside the margin after the iteration
// limit returns true together with ErrFailedToConverge, leaving the chain
// at the best pose found.
func (s *Solver2D) Solve(x, y float64) (bool, error) {
	if len(s.segments) == 0 {
		return false, ErrNoSegments
	}
	if !s.IsReachable(x, y) {
		s.logger.Debugw("target out of reach", "x", x, "y", y, "armLength", s.armLength)
		return false, nil
	}

	target := r2.Point{X: x, Y: y}
	lastDist := math.Inf(1)
	for i := 0; i < s.maxIterations; i++ {
		dist := s.segments[len(s.segments)-1].joint.Sub(target).Norm()
		if dist < s.marginOfError {
			s.logger.Debugf("converged after %d iterations", i)
			return true, nil
		}
		if lastDist-dist <= dist*stallRelTol {
			s.unstickJoints()
		}
		lastDist = dist
		s.Iterate(x, y)
	}
	return true, ErrFailedToConverge
}

// JointPositions returns the base point followed by every segment's joint
// in chain order. The result is a fresh snapshot of length segment count
// plus one.
func (s *Solver2D) JointPositions() []r2.Point {
	positions := make([]r2.Point, 0, len(s.segments)+1)
	positions = append(positions, s.base)
	for _, sg := range s.segments {
		positions = append(positions, sg.joint)
	}
	return positions
}

// EndEffector returns the current position of the chain's last joint.
func (s *Solver2D) EndEffector() (r2.Point, error) {
	if len(s.segments) == 0 {
		return r2.Point{}, ErrNoSegments
	}
	return s.segments[len(s.segments)-1].joint, nil
}

// Name returns the chain's name, if one was set when it was loaded.
func (s *Solver2D) Name() string {
	return s.name
}

// Base returns the fixed base point of the chain.
func (s *Solver2D) Base() r2.Point {
	return s.base
}

// ArmLength returns the sum of all segment lengths.
func (s *Solver2D) ArmLength() float64 {
	return s.armLength
}

// unstickJoints kicks every interior joint off the line it is locked on,
// perpendicular to the joint's direction from the base. A chain collinear
// with its target cannot fold, so relaxation sweeps leave it unchanged
// until the symmetry is broken. Segment lengths are restored by the sweep
// that follows.
func (s *Solver2D) unstickJoints() {
	if len(s.segments) < 2 {
		return
	}
	s.logger.Debug("relaxation stalled, kicking interior joints")
	for _, sg := range s.segments[:len(s.segments)-1] {
		perp := unitOr(sg.joint.Sub(s.base), defaultDirection).Ortho()
		sg.joint = sg.joint.Add(perp.Mul(sg.length * unstickRatio))
	}
}
