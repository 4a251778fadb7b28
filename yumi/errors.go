package yumi

import "github.com/pkg/errors"

var errEmptyTrajectory = errors.New("a trajectory must contain at least one state")

// NewInvalidFrameError returns an error indicating that a pose does not take
// the tool frame to one of the accepted reference frames.
func NewInvalidFrameError(fromFrame, toFrame string) error {
	return errors.Errorf(
		"pose takes frame %q to frame %q; must take frame %q to frame %q or %q",
		fromFrame, toFrame, FrameTool, FrameWorld, FrameBase,
	)
}

// NewUnsupportedToolError returns an error indicating an unknown tool kind.
func NewUnsupportedToolError(tool Tool) error {
	return errors.Errorf("tool %q not supported, must be %q or %q", tool, ToolGripper, ToolSuction)
}

// NewJointCountError returns an error indicating the wrong number of joint
// angles for a single arm.
func NewJointCountError(count int) error {
	return errors.Errorf("expected %d joint angles, got %d", NumJoints, count)
}

func errFieldsRequired(field string) error {
	return errors.Errorf("%s must be specified", field)
}
