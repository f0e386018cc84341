package model

import "errors"

// Validation errors returned by the estimation pipeline. All of them are
// deterministic input failures: the caller must correct the inputs and run
// again, there is nothing to retry.
var (
	// ErrInvalidStepCount means the adjusted stair height divided by the
	// desired step height rounds to zero or fewer steps.
	ErrInvalidStepCount = errors.New("step count must be at least 1")

	// ErrInvalidStepWidth means the side overhang and slab allowances
	// consume the entire stair width.
	ErrInvalidStepWidth = errors.New("side allowances exceed total stair width")

	// ErrMissingMeasurement means a required numeric input is absent,
	// zero, or negative where a positive value is needed.
	ErrMissingMeasurement = errors.New("required measurement missing or not positive")

	// ErrNoMaterialSelected means the course selector was given an empty
	// set of masonry units to choose from.
	ErrNoMaterialSelected = errors.New("no masonry unit selected")
)
