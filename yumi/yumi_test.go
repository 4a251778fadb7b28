package yumi_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"github.com/allenyh/yumipy/spatialmath"
	"github.com/allenyh/yumipy/yumi"
)

func TestArmSide(t *testing.T) {
	test.That(t, yumi.ArmLeft.PlanningGroup(), test.ShouldEqual, "left_arm")
	test.That(t, yumi.ArmRight.PlanningGroup(), test.ShouldEqual, "right_arm")

	names := yumi.ArmRight.JointNames()
	test.That(t, len(names), test.ShouldEqual, yumi.NumJoints)
	test.That(t, names[0], test.ShouldEqual, "yumi_joint_1_r")
	test.That(t, names[6], test.ShouldEqual, "yumi_joint_7_r")
	test.That(t, yumi.ArmLeft.JointNames()[3], test.ShouldEqual, "yumi_joint_4_l")
}

func TestStateRoundTrip(t *testing.T) {
	radians := []float64{0, 0.5, -1.2, 3.1, -0.01, 2, 0.7}
	state, err := yumi.NewStateFromRadians(yumi.ArmRight, radians)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, state.Side(), test.ShouldEqual, yumi.ArmRight)

	back := state.InRadians()
	for i := range radians {
		test.That(t, back[i], test.ShouldAlmostEqual, radians[i], 1e-9)
	}

	degrees := state.Joints()
	again, err := yumi.NewState(yumi.ArmRight, degrees)
	test.That(t, err, test.ShouldBeNil)
	for i, r := range again.InRadians() {
		test.That(t, r, test.ShouldAlmostEqual, radians[i], 1e-9)
	}
}

func TestStateJointCount(t *testing.T) {
	_, err := yumi.NewState(yumi.ArmLeft, []float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 7 joint angles")

	_, err = yumi.NewStateFromRadians(yumi.ArmLeft, make([]float64, 8))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewTrajectory(t *testing.T) {
	_, err := yumi.NewTrajectory(nil)
	test.That(t, err, test.ShouldNotBeNil)

	state, err := yumi.NewState(yumi.ArmRight, make([]float64, yumi.NumJoints))
	test.That(t, err, test.ShouldBeNil)
	traj, err := yumi.NewTrajectory([]*yumi.State{state})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(traj), test.ShouldEqual, 1)
}

func TestValidateToolPose(t *testing.T) {
	for _, tc := range []struct {
		name      string
		fromFrame string
		toFrame   string
		ok        bool
	}{
		{"tool to world", yumi.FrameTool, yumi.FrameWorld, true},
		{"tool to base", yumi.FrameTool, yumi.FrameBase, true},
		{"wrong from frame", yumi.FrameHand, yumi.FrameWorld, false},
		{"wrong to frame", yumi.FrameTool, "camera", false},
		{"both wrong", "gripper", "table", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pose := spatialmath.NewIdentityTransform(tc.fromFrame, tc.toFrame)
			err := yumi.ValidateToolPose(pose)
			if tc.ok {
				test.That(t, err, test.ShouldBeNil)
			} else {
				test.That(t, err, test.ShouldNotBeNil)
				test.That(t, err.Error(), test.ShouldContainSubstring, "must take frame")
			}
		})
	}

	test.That(t, yumi.ValidateToolPose(nil), test.ShouldNotBeNil)
}

func TestNormalizeToHand(t *testing.T) {
	pose := spatialmath.NewRigidTransform(
		quat.Number{Real: 1}, r3.Vector{X: 0.3, Z: 0.2}, yumi.FrameTool, yumi.FrameBase,
	)

	hand, err := yumi.NormalizeToHand(pose, yumi.ToolGripper)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hand.FromFrame(), test.ShouldEqual, yumi.FrameHand)
	test.That(t, hand.ToFrame(), test.ShouldEqual, yumi.FrameBase)
	tr := hand.Translation()
	test.That(t, tr.X, test.ShouldAlmostEqual, 0.3, 1e-9)
	test.That(t, tr.Z, test.ShouldAlmostEqual, 0.2-0.157, 1e-9)

	suction, err := yumi.NormalizeToHand(pose, yumi.ToolSuction)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, suction.Translation().Z, test.ShouldAlmostEqual, 0.2-0.1665, 1e-9)

	_, err = yumi.NormalizeToHand(pose, yumi.Tool("magnet"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not supported")

	badPose := spatialmath.NewIdentityTransform(yumi.FrameHand, yumi.FrameWorld)
	_, err = yumi.NormalizeToHand(badPose, yumi.ToolGripper)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestToolOffsetFrames(t *testing.T) {
	for _, tool := range []yumi.Tool{yumi.ToolGripper, yumi.ToolSuction} {
		offset, err := yumi.ToolOffset(tool)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, offset.FromFrame(), test.ShouldEqual, yumi.FrameHand)
		test.That(t, offset.ToFrame(), test.ShouldEqual, yumi.FrameTool)
	}
}
