package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// Input errors
	ErrInvalidNotation    = errors.New("nxcube: invalid move notation")
	ErrInvalidArrangement = errors.New("nxcube: invalid arrangement")
	ErrInvalidDegree      = errors.New("nxcube: invalid degree")

	// Solver errors
	ErrUnsupportedDegree    = errors.New("nxcube: unsupported degree")
	ErrNoPairFound          = errors.New("nxcube: no matching edge pair found")
	ErrGuardCeilingExceeded = errors.New("nxcube: retry guard ceiling exceeded")
)
