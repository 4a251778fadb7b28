package spatialmath

import "github.com/pkg/errors"

// NewFrameMismatchError returns an error indicating that two transforms could
// not be composed because the inner frames differ.
func NewFrameMismatchError(fromFrame, toFrame string) error {
	return errors.Errorf("cannot compose: frame %q does not match frame %q", fromFrame, toFrame)
}
