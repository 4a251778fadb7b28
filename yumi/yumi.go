// Package yumi defines the domain types for the ABB YuMi dual-arm robot:
// arm identities, joint states, trajectories, frame names, and the fixed
// tool-to-hand offsets used to express tool poses in the planner's hand frame.
package yumi

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/allenyh/yumipy/spatialmath"
)

// NumJoints is the number of joints in a single YuMi arm.
const NumJoints = 7

// Frame names accepted on pose arguments. Poses handed to the motion planner
// must take FrameTool to either FrameWorld or FrameBase.
const (
	FrameTool  = "tool"
	FrameWorld = "world"
	FrameBase  = "base"

	// FrameHand is the planner-side frame that the fixed tool offsets map
	// tool poses into.
	FrameHand = "hand"
)

// ArmSide identifies one of the YuMi's two arms.
type ArmSide string

// The two arms.
const (
	ArmLeft  ArmSide = "left"
	ArmRight ArmSide = "right"
)

// PlanningGroup returns the planning group name the external planner uses
// for this arm.
func (s ArmSide) PlanningGroup() string {
	if s == ArmLeft {
		return "left_arm"
	}
	return "right_arm"
}

// JointNames returns the arm's joint names in canonical order. The canonical
// order is the lexicographic order of the names, which for single-digit
// joint indices is also the numeric order.
func (s ArmSide) JointNames() []string {
	suffix := "r"
	if s == ArmLeft {
		suffix = "l"
	}
	names := make([]string, 0, NumJoints)
	for i := 1; i <= NumJoints; i++ {
		names = append(names, fmt.Sprintf("yumi_joint_%d_%s", i, suffix))
	}
	return names
}

// Tool identifies the end-of-arm tool mounted on a YuMi arm.
type Tool string

// The supported tools.
const (
	ToolGripper Tool = "gripper"
	ToolSuction Tool = "suction"
)

// Fixed hand-to-tool-tip offsets measured on the hardware. Composing a
// tool-frame pose with one of these yields the pose of the hand frame the
// planner expects.
var (
	toolOffsetGripper = spatialmath.NewRigidTransformFromRotationMatrix(
		[9]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		r3.Vector{Z: -0.157}, FrameHand, FrameTool,
	)
	toolOffsetSuction = spatialmath.NewRigidTransformFromRotationMatrix(
		[9]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		r3.Vector{Z: -0.1665}, FrameHand, FrameTool,
	)
)

// ToolOffset returns the fixed transform taking the planner's hand frame to
// the given tool's tip frame.
func ToolOffset(tool Tool) (*spatialmath.RigidTransform, error) {
	switch tool {
	case ToolGripper:
		return toolOffsetGripper, nil
	case ToolSuction:
		return toolOffsetSuction, nil
	default:
		return nil, NewUnsupportedToolError(tool)
	}
}

// ValidateToolPose checks that a pose takes the tool frame to one of the
// accepted world reference frames.
func ValidateToolPose(pose *spatialmath.RigidTransform) error {
	if pose == nil {
		return errFieldsRequired("pose")
	}
	if pose.FromFrame() != FrameTool || (pose.ToFrame() != FrameWorld && pose.ToFrame() != FrameBase) {
		return NewInvalidFrameError(pose.FromFrame(), pose.ToFrame())
	}
	return nil
}

// NormalizeToHand validates that pose takes the tool frame to a world
// reference frame and re-expresses it in the planner's hand frame by
// composing it with the tool's fixed offset.
func NormalizeToHand(pose *spatialmath.RigidTransform, tool Tool) (*spatialmath.RigidTransform, error) {
	if err := ValidateToolPose(pose); err != nil {
		return nil, err
	}
	offset, err := ToolOffset(tool)
	if err != nil {
		return nil, err
	}
	return spatialmath.Compose(pose, offset)
}
