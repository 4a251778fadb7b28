package yumi

import (
	"github.com/allenyh/yumipy/utils"
)

// State is the configuration of one YuMi arm: seven joint angles stored in
// degrees, tagged with the arm they belong to.
type State struct {
	side   ArmSide
	joints [NumJoints]float64 // degrees
}

// NewState returns a state from joint angles in degrees.
func NewState(side ArmSide, degrees []float64) (*State, error) {
	if len(degrees) != NumJoints {
		return nil, NewJointCountError(len(degrees))
	}
	s := &State{side: side}
	copy(s.joints[:], degrees)
	return s, nil
}

// NewStateFromRadians returns a state from joint angles in radians.
func NewStateFromRadians(side ArmSide, radians []float64) (*State, error) {
	if len(radians) != NumJoints {
		return nil, NewJointCountError(len(radians))
	}
	s := &State{side: side}
	for i, r := range radians {
		s.joints[i] = utils.RadToDeg(r)
	}
	return s, nil
}

// Side returns which arm the state belongs to.
func (s *State) Side() ArmSide {
	return s.side
}

// Joints returns the joint angles in degrees, in canonical joint order.
func (s *State) Joints() []float64 {
	out := make([]float64, NumJoints)
	copy(out, s.joints[:])
	return out
}

// InRadians returns the joint angles in radians, in canonical joint order.
func (s *State) InRadians() []float64 {
	out := make([]float64, NumJoints)
	for i, d := range s.joints {
		out[i] = utils.DegToRad(d)
	}
	return out
}

// Trajectory is an ordered sequence of arm states to execute. A trajectory is
// never empty; an infeasible plan is represented by the absence of a
// trajectory, not by an empty one.
type Trajectory []*State

// NewTrajectory wraps a non-empty sequence of states.
func NewTrajectory(states []*State) (Trajectory, error) {
	if len(states) == 0 {
		return nil, errEmptyTrajectory
	}
	return Trajectory(states), nil
}
