package core

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// MaxCapacity is the largest MaxLength a textual metric accepts. Working
// storage of every textual algorithm is a fixed array of this capacity, so
// no call allocates.
const MaxCapacity = 256

// Require panics with err if err is non-nil. The violation is logged first so
// it is visible even when a caller recovers the panic.
func Require(err error) {
	if err == nil {
		return
	}
	log.Error().Err(err).Msg("contract violation")
	panic(err)
}

// Violation wraps sentinel with a formatted detail message.
func Violation(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// CheckMaxLength validates a textual metric's configured maximum length.
// minLength is the smallest MaxLength the metric can work with.
func CheckMaxLength(maxLength, minLength int) error {
	if maxLength < minLength || maxLength > MaxCapacity {
		return Violation(ErrCapacity, "MaxLength %d not in [%d, %d]", maxLength, minLength, MaxCapacity)
	}
	return nil
}

// CheckSequences validates that both sequence lengths are within maxLength.
func CheckSequences(maxLength, left, right int) error {
	if left > maxLength {
		return Violation(ErrMaxLength, "left length %d > %d", left, maxLength)
	}
	if right > maxLength {
		return Violation(ErrMaxLength, "right length %d > %d", right, maxLength)
	}
	return nil
}

// CheckPair validates that two positional inputs are non-empty and equally long.
func CheckPair(left, right int) error {
	if left == 0 || right == 0 {
		return ErrEmptyVector
	}
	if left != right {
		return Violation(ErrLengthMismatch, "%d != %d", left, right)
	}
	return nil
}
