package fabrik

import "github.com/pkg/errors"

var (
	// ErrBadMargin is returned when constructing a solver with a margin of error that is not a positive number.
	ErrBadMargin = errors.New("margin of error must be a positive number")

	// ErrBadSegmentLength is returned when appending a segment whose length is not a positive finite number.
	ErrBadSegmentLength = errors.New("segment length must be a positive finite number")

	// ErrNoSegments is returned by operations that need an end effector when the chain is still empty.
	ErrNoSegments = errors.New("chain has no segments")

	// ErrFailedToConverge is returned by Solve when a reachable target was not brought within the margin
	// of error before the iteration limit. The chain is left at the best pose found.
	ErrFailedToConverge = errors.New("hit iteration limit before converging on target")

	// ErrNoChainInformation is used when a chain description is empty.
	ErrNoChainInformation = errors.New("no chain information")
)
