package motionplan

import (
	"github.com/pkg/errors"
)

// NewUnsupportedPlannerError returns an error indicating an unknown planner name.
func NewUnsupportedPlannerError(planner string) error {
	return errors.Errorf("planner %q not supported", planner)
}

// NewJointMismatchError returns an error indicating that a service response
// did not cover exactly the arm's joints.
func NewJointMismatchError(want, got []string) error {
	return errors.Errorf("planner response joints %v do not match arm joints %v", got, want)
}
