// Package fabrik implements the FABRIK (Forward And Backward Reaching
// Inverse Kinematics) heuristic for planar kinematic chains.
//
// A Solver2D owns an ordered chain of fixed-length segments anchored to an
// immovable base point. Each Solve call relaxes the chain toward a target
// with alternating backward and forward sweeps, preserving every segment
// length while pulling the end effector to within the configured margin of
// error. Joint positions persist between calls, so consecutive solves
// refine the chain's last pose rather than restarting from the initial one.
//
// Chains can be built programmatically with AddSegment or loaded from a
// JSON description with ParseChainJSONFile.
package fabrik
