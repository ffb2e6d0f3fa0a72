package core

import "errors"

// Contract violations. Every metric either panics with an error wrapping one
// of these, or reports it from its Validate counterpart.
var (
	// ErrEmptyVector indicates a vector or sequence that must be non-empty is empty.
	ErrEmptyVector = errors.New("gometric: input must be non-empty")

	// ErrLengthMismatch indicates the two inputs of a positional metric differ in length.
	ErrLengthMismatch = errors.New("gometric: inputs must have equal length")

	// ErrElementBound indicates an element whose magnitude exceeds the admissible bound.
	ErrElementBound = errors.New("gometric: element exceeds admissible bound")

	// ErrNegativeElement indicates a negative element where only non-negative ones are allowed.
	ErrNegativeElement = errors.New("gometric: element must be non-negative")

	// ErrZeroVector indicates a vector with no non-zero element where a norm is divided by.
	ErrZeroVector = errors.New("gometric: vector must have a non-zero element")

	// ErrMaxLength indicates a sequence longer than the metric's MaxLength.
	ErrMaxLength = errors.New("gometric: sequence exceeds MaxLength")

	// ErrCapacity indicates a MaxLength outside the supported range.
	ErrCapacity = errors.New("gometric: MaxLength outside supported capacity")

	// ErrOrder indicates a Minkowski order below one.
	ErrOrder = errors.New("gometric: Minkowski order must be >= 1")

	// ErrPrefixScale indicates a Jaro-Winkler prefix scale that could leave [0, 1].
	ErrPrefixScale = errors.New("gometric: prefix scale must be within [0, 0.25]")

	// ErrUnknownMetric indicates a registry lookup for a name that is not registered.
	ErrUnknownMetric = errors.New("gometric: unknown metric")
)
